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

// Package unidata loads the embedded Unicode character table.
//
// The table is gzip-compressed UTF-8 text with one record per line and
// three tab-separated columns:
//
//	HEX_CODE_POINT \t DESCRIPTION \t KEYWORD\vKEYWORD\v...
//
// Keywords are separated by a vertical tab. The table is decoded on the
// first call to Store.Load and kept in memory for the life of the Store.
package unidata
