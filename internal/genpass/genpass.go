package genpass

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()-_=+[]{}<>?"

	// DefaultLength is the length of a password generated with
	// [DefaultPolicy].
	DefaultLength = 20

	// maxCoverageAttempts bounds the regenerate-for-coverage loop so
	// generation always terminates.
	maxCoverageAttempts = 10
)

// Policy controls which character classes a generated password draws
// from and how long it is.
type Policy struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	RequireEachClass bool
}

// DefaultPolicy matches spec.md §4.8: length 20, every class enabled,
// coverage required.
func DefaultPolicy() Policy {
	return Policy{
		Length:           DefaultLength,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		Symbols:          true,
		RequireEachClass: true,
	}
}

func (p Policy) classes() []string {
	var classes []string
	if p.Lowercase {
		classes = append(classes, lowercase)
	}
	if p.Uppercase {
		classes = append(classes, uppercase)
	}
	if p.Digits {
		classes = append(classes, digits)
	}
	if p.Symbols {
		classes = append(classes, symbols)
	}
	return classes
}

// Generate draws a password of p.Length from the union of p's enabled
// character classes, rejection-sampling each character rather than
// reducing a random byte modulo the alphabet size (which would bias
// toward early characters). When RequireEachClass is set, it regenerates
// up to 10 times to ensure every enabled class appears at least once,
// then relaxes the requirement so generation always terminates.
func Generate(p Policy) (string, error) {
	classes := p.classes()
	if len(classes) == 0 {
		return "", fmt.Errorf("genpass: no character classes enabled")
	}
	if p.Length <= 0 {
		return "", fmt.Errorf("genpass: length must be positive, got %d", p.Length)
	}

	alphabet := strings.Join(classes, "")

	var password string
	var err error
	for attempt := 0; attempt < maxCoverageAttempts; attempt++ {
		password, err = draw(alphabet, p.Length)
		if err != nil {
			return "", err
		}
		if !p.RequireEachClass || coversAllClasses(password, classes) {
			return password, nil
		}
	}
	return password, nil
}

func draw(alphabet string, length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("genpass: draw random index: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

func coversAllClasses(password string, classes []string) bool {
	for _, class := range classes {
		if !strings.ContainsAny(password, class) {
			return false
		}
	}
	return true
}
