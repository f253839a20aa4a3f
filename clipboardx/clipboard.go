package clipboardx

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Write pushes text to the system clipboard. It tries the native
// clipboard first and falls back to an OSC52 escape so copying still
// works over SSH. Returns true if any sink accepted the text.
func Write(text string) bool {
	ok := clipboard.WriteAll(text) == nil
	if writeOSC52(text) {
		ok = true
	}
	return ok
}

func writeOSC52(text string) bool {
	if text == "" {
		return false
	}
	// Only emit the escape when stdout is a terminal.
	if fi, err := os.Stdout.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stdout, "\x1b]52;c;%s\x07", encoded)
	return err == nil
}
