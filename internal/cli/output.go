package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/blog-api/internal/validation"
	"github.com/fatih/color"
)

var (
	errInvalidForm  = errors.New("the post was not saved, fix the fields above")
	errPostNotFound = errors.New("post not found")
)

// OutputErrorAndExit prints a red error message and exits with status 1
func OutputErrorAndExit(msg string, args ...interface{}) {
	msg = capitalize(fmt.Sprintf(msg, args...))
	fmt.Fprintln(os.Stderr, color.New(color.FgHiRed, color.Bold).Sprint("🚨 "+msg))
	os.Exit(1)
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// printFieldErrors writes one colored line per invalid form field
func printFieldErrors(w io.Writer, errs validation.Errors) {
	for _, e := range errs {
		fmt.Fprintf(w, "%s %s\n", color.New(color.FgHiRed).Sprint("✗ "+e.Field+":"), e.Message)
	}
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, color.New(color.FgHiGreen).Sprintf("✅ "+format, args...))
}
