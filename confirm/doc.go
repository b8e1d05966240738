// Package confirm provides the wait-for-signal collaborators used by
// interactive assertion confirmation.
//
// A failed assertion in interactive mode blocks until the operator
// raises one of three signals: continue, enter scroll mode, or enter
// batch mode. Where those signals come from depends on the host:
//
//   - TerminalWaiter reads ^C, ^D and ^E from a terminal in raw mode.
//   - SignalWaiter listens for OS signals (SIGINT continues, SIGUSR1
//     scrolls, SIGUSR2 switches to batch mode) while a prompt is open.
//   - ChannelWaiter receives signals from Go code.
//
// Auto picks TerminalWaiter when stdin is a terminal and SignalWaiter
// otherwise.
package confirm
