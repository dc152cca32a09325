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

package history

import "fmt"

const menuChars = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MenuEntry is one history item with its keyboard accelerator.
type MenuEntry struct {
	Index       int
	Accelerator rune
	Label       string
}

// String renders the entry with an ampersand marking the accelerator.
func (e MenuEntry) String() string {
	return fmt.Sprintf("&%c %s", e.Accelerator, e.Label)
}

// MenuEntries labels up to capacity items with accelerators. Lists with a
// capacity from 10 to 26 are lettered from A; others start at 1.
func MenuEntries(labels []string, capacity int) []MenuEntry {
	base := 0
	if capacity >= 10 && capacity <= 26 {
		base = 9
	}
	entries := make([]MenuEntry, 0, len(labels))
	for i, label := range labels {
		if i >= capacity || base+i >= len(menuChars) {
			break
		}
		entries = append(entries, MenuEntry{
			Index:       i,
			Accelerator: rune(menuChars[base+i]),
			Label:       label,
		})
	}
	return entries
}

// SearchMenu returns the recent searches as menu entries.
func (s *Store) SearchMenu() []MenuEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MenuEntries(s.searches.Values(), s.searches.Capacity())
}

// CharMenu returns the recent characters as menu entries labelled with
// the character and its code point.
func (s *Store) CharMenu() []MenuEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chars := s.chars.Values()
	labels := make([]string, len(chars))
	for i, c := range chars {
		labels[i] = fmt.Sprintf("%c U+%04X", c, c)
	}
	return MenuEntries(labels, s.chars.Capacity())
}
