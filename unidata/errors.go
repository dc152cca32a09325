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

package unidata

import "errors"

var (
	// ErrDecompress is returned when the table cannot be gunzipped or read.
	ErrDecompress = errors.New("cannot decompress character table")

	// ErrMalformedRecord is returned for a line without exactly three columns.
	ErrMalformedRecord = errors.New("malformed character table record")

	// ErrEmptyTable is returned when the table holds no records.
	ErrEmptyTable = errors.New("character table has no records")

	// ErrInvalidEncoding is returned for a line that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("character table is not valid UTF-8")
)
