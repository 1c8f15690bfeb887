// Package timetable implements the weekly class assignment engine.
//
// Given two teacher pools, per-teacher constraints, and round/class demand,
// Generate produces a conflict-free weekly assignment of (day, period, class)
// to (role, teacher): homeroom ownership, role staggering across rounds,
// exam-period placement, and load-fair candidate selection. The engine is a
// pure computation: it owns no storage, transport, or rendering concerns and
// keeps all mutable state scoped to a single Generate call, so concurrent
// calls never share state.
//
// Shortage is not an error: when no eligible teacher survives filtering the
// engine records a warning and emits the slot with TeacherUnassigned, then
// keeps going. Only structurally invalid configuration is rejected, before any
// assignment work begins.
package timetable
