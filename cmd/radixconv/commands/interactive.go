package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"radixconv/internal/domain"
	"radixconv/internal/logging"
	"radixconv/internal/radix"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Convert numbers interactively until you quit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{
				in:   bufio.NewReader(cmd.InOrStdin()),
				out:  cmd.OutOrStdout(),
				conv: appCtx.Converter,
			}
			return s.run(cmd.Context())
		},
	}
}

// session is one interactive loop over an input and output stream.
type session struct {
	in   *bufio.Reader
	out  io.Writer
	conv domain.ConversionService
}

func (s *session) run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	for {
		s.printMenu()

		src, ok, err := s.readBase("Enter source base (2-36, or 0 to quit): ")
		if err != nil || !ok {
			return s.finish(err)
		}
		dst, ok, err := s.readBase("Enter destination base (2-36, or 0 to quit): ")
		if err != nil || !ok {
			return s.finish(err)
		}

		line, err := s.readLine(fmt.Sprintf("\nEnter number in base %d: ", src))
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return s.finish(nil)
		}

		input := strings.TrimSpace(line)
		conv, cerr := s.conv.Convert(ctx, domain.ConversionRequest{
			Input: domain.Numeral(input),
			From:  src,
			To:    dst,
		})
		if cerr != nil {
			log.Debug("interactive.failed", "input", input, "err", cerr)
			s.printError(userMessage(cerr))
		} else {
			s.printResult(conv)
		}

		again, err := s.readLine("\nConvert another number? (Y/N): ")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(again)), "Y") {
			return s.finish(nil)
		}
	}
}

// readBase prompts until it gets a valid base. ok is false when the user
// enters 0 or the input ends.
func (s *session) readBase(prompt string) (domain.Radix, bool, error) {
	for {
		line, err := s.readLine("\n" + prompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, false, err
		}
		text := strings.TrimSpace(line)
		if text == "" && errors.Is(err, io.EOF) {
			return 0, false, nil
		}

		base, convErr := strconv.Atoi(text)
		switch {
		case convErr != nil:
			s.printError("Invalid input. Please enter a number.")
		case base == 0:
			return 0, false, nil
		case radix.CheckRadix(base) != nil:
			s.printError(userMessage(radix.CheckRadix(base)))
		default:
			return domain.Radix(base), true, nil
		}

		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
	}
}

// readLine prints prompt and reads one line without its terminator.
// At end of input the partial line is returned along with io.EOF.
func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func (s *session) finish(err error) error {
	if err != nil {
		return err
	}
	s.printHeader("Thank you for using the converter!")
	return nil
}

func (s *session) printHeader(title string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headerStyle.Render(title))
}

func (s *session) printMenu() {
	s.printHeader("Universal Number Base Converter")
	fmt.Fprintf(s.out, " This program can convert numbers between any base from %d to %d.\n", radix.MinRadix, radix.MaxRadix)
	fmt.Fprintln(s.out, hintStyle.Render("  - Use digits 0-9 and letters A-Z (case-insensitive)."))
	fmt.Fprintln(s.out, hintStyle.Render("  - Enter '0' for a base to quit."))
}

func (s *session) printError(msg string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, errorStyle.Render("! ERROR: "+msg))
}

func (s *session) printResult(c domain.Conversion) {
	fmt.Fprintln(s.out, "\nConversion Result:")
	fmt.Fprintf(s.out, "\n %s (base %d)\n", c.Input, c.From)
	fmt.Fprintln(s.out, " | converts to |")
	fmt.Fprintln(s.out, " v             v")
	fmt.Fprintf(s.out, " %s (base %d)\n", resultStyle.Render(c.Output.String()), c.To)
}
