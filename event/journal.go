// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"sync"
)

// Sink - receives events in emission order
type Sink interface {
	Deposit(Event)
}

// Journal - holds the events of one call until its outcome is known
type Journal struct {
	sync.Mutex
	events []Event
}

// NewJournal - an empty journal
func NewJournal() *Journal {
	return &Journal{
		events: make([]Event, 0, 1),
	}
}

// Deposit - append an event
func (j *Journal) Deposit(e Event) {
	j.Lock()
	j.events = append(j.events, e)
	j.Unlock()
}

// Events - a copy of the pending events
func (j *Journal) Events() []Event {
	j.Lock()
	defer j.Unlock()

	events := make([]Event, len(j.events))
	copy(events, j.events)
	return events
}

// Flush - pass pending events on in order and empty the journal
func (j *Journal) Flush(sink Sink) []Event {
	j.Lock()
	events := j.events
	j.events = make([]Event, 0, 1)
	j.Unlock()

	for _, e := range events {
		sink.Deposit(e)
	}
	return events
}

// Discard - drop pending events
func (j *Journal) Discard() {
	j.Lock()
	j.events = make([]Event, 0, 1)
	j.Unlock()
}
