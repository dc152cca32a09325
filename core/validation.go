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

import (
	"fmt"
	"unicode/utf8"
)

func ValidateCapacity(n int) error {
	if n < MinCapacity {
		return fmt.Errorf("%w: %d is below minimum %d", ErrInvalidCapacity, n, MinCapacity)
	}
	return nil
}

func ValidateMatchMode(mode MatchMode) error {
	if mode != MatchAll && mode != MatchAny {
		return fmt.Errorf("%w: value %d", ErrInvalidMatchMode, mode)
	}
	return nil
}

func ValidateChar(c rune) error {
	if !utf8.ValidRune(c) || c == 0 {
		return fmt.Errorf("%w: %U", ErrInvalidChar, c)
	}
	return nil
}

// ValidateHistory checks capacities and match mode. List lengths are not
// checked against capacity; restoring a history truncates instead.
func ValidateHistory(h *History) error {
	if h == nil {
		return fmt.Errorf("%w: history is nil", ErrInvalidHistory)
	}
	if err := ValidateCapacity(h.SearchesSize); err != nil {
		return fmt.Errorf("%w: searches: %w", ErrInvalidHistory, err)
	}
	if err := ValidateCapacity(h.CharsSize); err != nil {
		return fmt.Errorf("%w: chars: %w", ErrInvalidHistory, err)
	}
	if err := ValidateMatchMode(h.MatchMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHistory, err)
	}
	for _, c := range h.Chars {
		if err := ValidateChar(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidHistory, err)
		}
	}
	return nil
}
