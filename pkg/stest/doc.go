// Package stest provides test helpers for code built on substrate stores.
//
// A Recorder counts raw store notifications; a Probe plays the role of a
// reactive consumer attached through a binding, recording every change
// signal it receives. Expect helpers keep assertions terse:
//
//	store := substrate.New(Profile{})
//	rec := stest.NewRecorder(store)
//	defer rec.Stop()
//
//	probe := stest.NewProbe(store, func(p Profile) string { return p.First })
//	defer probe.Detach()
//
//	store.Set(func(p *Profile) { p.First = "Ada" })
//
//	stest.ExpectNotifications(t, rec, 1)
//	stest.ExpectChanges(t, probe, "Ada")
package stest
