package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunCLI drives an interactive prompt loop over in/out until the user
// types an exit word, input reaches EOF or ctx is cancelled. Intended to
// run in its own goroutine when started through the HTTP surface.
func (r *Responder) RunCLI(ctx context.Context, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "\n🦷 Diş Sağlığı Chatbot'u (çıkmak için: çık/exit/quit)")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(out, "Sen: ")
		if !scanner.Scan() {
			return
		}
		msg := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(msg) {
		case "çık", "exit", "quit":
			fmt.Fprintln(out, "Görüşürüz! 😊")
			return
		case "":
			continue
		}
		fmt.Fprintf(out, "Bot: %s\n\n", r.Chat(ctx, msg))
	}
}
