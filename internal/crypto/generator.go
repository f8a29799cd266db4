package crypto

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength     = 4
	MaxLength     = 1024
	DefaultLength = 10
)

var (
	// ErrInvalidArgument marks every rejection caused by the caller's options.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidLength = errors.Mark(errors.Newf("password length must be at least %d", MinLength), ErrInvalidArgument)
	ErrLengthTooLong = errors.Mark(errors.Newf("password length must be at most %d", MaxLength), ErrInvalidArgument)
	ErrEmptyPool     = errors.Mark(errors.New("no valid characters available to generate password"), ErrInvalidArgument)
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	// Exclude lists characters that must never appear in the password.
	Exclude string
}

// DefaultOptions returns the defaults: 10 characters, all types enabled, nothing excluded.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Password is a generated password together with the pool it was drawn from.
type Password struct {
	Value    string
	Entropy  float64
	PoolSize int
}

// Generate creates a cryptographically secure random password based on the given
// options and returns it together with its entropy in bits.
func Generate(opts GeneratorOptions) (string, float64, error) {
	p, err := NewPassword(opts)
	if err != nil {
		return "", 0, err
	}
	return p.Value, p.Entropy, nil
}

// NewPassword is Generate, also reporting the size of the pool the password was drawn from.
func NewPassword(opts GeneratorOptions) (Password, error) {
	return generate(rand.Reader, opts)
}

// Pool returns the characters a password built from opts is drawn from.
func Pool(opts GeneratorOptions) string {
	pool, _ := characterSets(opts)
	return pool
}

func generate(src io.Reader, opts GeneratorOptions) (Password, error) {
	if opts.Length < MinLength {
		return Password{}, ErrInvalidLength
	}
	if opts.Length > MaxLength {
		return Password{}, ErrLengthTooLong
	}

	pool, requiredSets := characterSets(opts)
	if pool == "" {
		return Password{}, ErrEmptyPool
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type that survived exclusion.
	for i, charset := range requiredSets {
		ch, err := randChar(src, charset)
		if err != nil {
			return Password{}, err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(src, pool)
		if err != nil {
			return Password{}, err
		}
		result[i] = ch
	}

	if err := secureShuffle(src, result); err != nil {
		return Password{}, err
	}

	return Password{
		Value:    string(result),
		Entropy:  Entropy(opts.Length, len(pool)),
		PoolSize: len(pool),
	}, nil
}

// characterSets builds the combined pool and the per-type sets that must each be
// represented. A selected type emptied entirely by Exclude is left out of the
// required sets rather than treated as an error.
func characterSets(opts GeneratorOptions) (string, []string) {
	var pool strings.Builder
	var requiredSets []string

	add := func(enabled bool, charset string) {
		if !enabled {
			return
		}
		charset = without(charset, opts.Exclude)
		if charset == "" {
			return
		}
		pool.WriteString(charset)
		requiredSets = append(requiredSets, charset)
	}

	add(opts.Uppercase, uppercaseChars)
	add(opts.Lowercase, lowercaseChars)
	add(opts.Numbers, numberChars)
	add(opts.Symbols, symbolChars)

	return pool.String(), requiredSets
}

// without removes every character of exclude from charset.
func without(charset, exclude string) string {
	if exclude == "" {
		return charset
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(exclude, r) {
			return -1
		}
		return r
	}, charset)
}

// randChar picks a random character from charset using src.
func randChar(src io.Reader, charset string) (byte, error) {
	n, err := rand.Int(src, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, errors.Wrap(err, "drawing random character")
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using src.
func secureShuffle(src io.Reader, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(src, big.NewInt(int64(i+1)))
		if err != nil {
			return errors.Wrap(err, "shuffling password")
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
