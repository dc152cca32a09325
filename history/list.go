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

import "github.com/emirpasic/gods/lists/arraylist"

// List is an ordered collection of unique values bounded by a capacity.
// Index 0 is the front. List is not safe for concurrent use.
type List[T comparable] struct {
	items    *arraylist.List
	capacity int
}

// NewList creates a list holding items in order, dropping repeats and
// anything past capacity.
func NewList[T comparable](capacity int, items ...T) *List[T] {
	l := &List[T]{
		items:    arraylist.New(),
		capacity: capacity,
	}
	for _, item := range items {
		if !l.Contains(item) {
			l.items.Add(item)
		}
	}
	l.truncate()
	return l
}

func (l *List[T]) Len() int {
	return l.items.Size()
}

func (l *List[T]) Capacity() int {
	return l.capacity
}

// SetCapacity changes the bound, dropping the oldest entries if needed.
func (l *List[T]) SetCapacity(n int) {
	l.capacity = n
	l.truncate()
}

// Front returns the most recent entry.
func (l *List[T]) Front() (T, bool) {
	return l.At(0)
}

func (l *List[T]) At(i int) (T, bool) {
	v, ok := l.items.Get(i)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// IndexOf returns the position of v, or -1.
func (l *List[T]) IndexOf(v T) int {
	return l.items.IndexOf(v)
}

func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// PushFront inserts v as the most recent entry and truncates to capacity.
// The caller ensures v is not already present.
func (l *List[T]) PushFront(v T) {
	l.items.Insert(0, v)
	l.truncate()
}

// Promote moves the entry at i to the front, keeping the relative order
// of the others.
func (l *List[T]) Promote(i int) {
	v, ok := l.items.Get(i)
	if !ok || i == 0 {
		return
	}
	l.items.Remove(i)
	l.items.Insert(0, v)
}

// ReplaceFront overwrites the front entry, or inserts v into an empty list.
func (l *List[T]) ReplaceFront(v T) {
	l.items.Set(0, v)
}

// Values returns a copy of the entries, most recent first.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.items.Size())
	for _, v := range l.items.Values() {
		values = append(values, v.(T))
	}
	return values
}

func (l *List[T]) truncate() {
	for l.items.Size() > l.capacity {
		l.items.Remove(l.items.Size() - 1)
	}
}
