//go:build !unix

package confirm

import (
	"os"
)

// osSignals maps OS signals to operator signals. Only interrupt is
// portable, so scroll and batch are unavailable here.
var osSignals = map[os.Signal]Signal{
	os.Interrupt: SignalContinue,
}
