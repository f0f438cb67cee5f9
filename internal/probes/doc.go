// Package probes implements the six audio diagnostic probes: audio stack,
// device presence, sink validity, mute state, stream routing, and Bluetooth
// profile. Each probe shells out through toolexec, parses the textual output,
// and resolves every failure mode to a finding; a probe never returns an
// error. Tool availability is resolved once per run into a Tools value so the
// probes stay free of global state.
package probes
