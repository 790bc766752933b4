// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profilesync keeps a form's editable record in step with the
// server-held record of the identity carried by the session credential.
//
// Two variants are provided:
//   - [PetSync] creates a record (add pet): the owner is taken from the
//     credential, the rest is typed by the user and submitted once.
//   - [ProfileSync] updates a record (manage profile): the record is fetched
//     for the identity, edited behind an edit toggle and submitted back.
//
// Every network step is split into an operation and an apply step. The
// operation (Fetch, Save) captures an immutable snapshot on the caller's
// goroutine and returns a function that only performs I/O and returns a
// result value. The apply step (ApplyFetch, ApplySave) mutates state and must
// run on the goroutine that owns the sync, such as a bubbletea Update loop.
// Initialize and Submit compose both for callers without an event loop.
//
// Outcomes of writes are reported through a [Notification] that hides
// itself after [AutoHideDuration] unless dismissed earlier.
package profilesync
