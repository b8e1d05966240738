//go:build unix

package confirm

import (
	"os"
	"syscall"
)

// osSignals maps OS signals to operator signals
var osSignals = map[os.Signal]Signal{
	syscall.SIGINT:  SignalContinue,
	syscall.SIGUSR1: SignalScroll,
	syscall.SIGUSR2: SignalBatch,
}
