// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "errors"

var (
	// ErrInvalidCapacity indicates a history list capacity below MinCapacity.
	ErrInvalidCapacity = errors.New("invalid history capacity")

	// ErrInvalidMatchMode indicates a MatchMode other than MatchAll or MatchAny.
	ErrInvalidMatchMode = errors.New("invalid match mode")

	// ErrInvalidHistory indicates a History failed validation.
	ErrInvalidHistory = errors.New("invalid history")

	// ErrInvalidChar indicates a rune that is not a valid Unicode scalar value.
	ErrInvalidChar = errors.New("invalid character")
)
