// Command bigcalc is a small REPL-free calculator exercising the
// bigint package's signed-integer operations from decimal arguments.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-numerics/bigint/bigint"
)

func main() {
	var verbose bool
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision signed-integer calculator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				viper.SetConfigFile(configFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}
			if viper.GetBool("verbose") {
				verbose = true
			}
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				bigint.SetLogger(logger)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log storage/allocator activity")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (sets defaults for flags below)")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(
		newBinaryCmd("add", "a + b", (*bigint.BigInt).Add),
		newBinaryCmd("sub", "a - b", (*bigint.BigInt).Sub),
		newBinaryCmd("mul", "a * b", (*bigint.BigInt).Mul),
		newDivModCmd(),
		newModCmd(),
		newFactorialCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bigcalc:", err)
		os.Exit(1)
	}
}

func newBinaryCmd(use, short string, op func(z, a, b *bigint.BigInt) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			b, err := parseDecimal(args[1])
			if err != nil {
				return err
			}
			z := bigint.New()
			if err := op(z, a, b); err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func newDivModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div <a> <b>",
		Short: "truncating quotient and remainder of a / b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			b, err := parseDecimal(args[1])
			if err != nil {
				return err
			}
			q, r := bigint.New(), bigint.New()
			if err := bigint.DivMod(q, r, a, b); err != nil {
				return err
			}
			fmt.Printf("quotient:  %s\n", render(q))
			fmt.Printf("remainder: %s\n", render(r))
			return nil
		},
	}
}

func newModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mod <a> <m>",
		Short: "a mod m, normalized to m's sign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			m, err := parseDecimal(args[1])
			if err != nil {
				return err
			}
			z := bigint.New()
			if err := z.Mod(a, m); err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func newFactorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "n! for a non-negative uint64 n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n uint64
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("invalid n %q: %w", args[0], err)
			}
			z := bigint.New()
			if err := z.Factorial(n); err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func printResult(z *bigint.BigInt) {
	s := render(z)
	fmt.Println(s)
	if len(s) > 40 {
		fmt.Fprintf(os.Stderr, "(%s digits, %s bits)\n",
			humanize.Comma(int64(len(strings.TrimPrefix(s, "-")))), humanize.Comma(int64(z.BitLen())))
	}
}

// render converts z to decimal for display. General radix conversion
// is out of the core package's scope; this walks z by repeated
// division by a digit-sized chunk of 10, which is all a CLI's output
// path needs.
func render(z *bigint.BigInt) string {
	if z.IsZero() {
		return "0"
	}
	abs := bigint.New()
	if err := abs.Abs(z); err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}

	const chunkDigits = 18
	var chunkMod uint64 = 1
	for i := 0; i < chunkDigits; i++ {
		chunkMod *= 10
	}
	chunk := bigint.New()
	if _, err := chunk.SetUint64(chunkMod); err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}

	var groups []string
	q, r := bigint.New(), bigint.New()
	for !abs.IsZero() {
		if err := bigint.DivMod(q, r, abs, chunk); err != nil {
			return fmt.Sprintf("<error: %v>", err)
		}
		groups = append(groups, fmt.Sprintf("%0*d", chunkDigits, r.Uint64()))
		abs, q = q, abs
	}
	// groups[len-1] is the most significant; strip its leading zeros.
	last := groups[len(groups)-1]
	last = strings.TrimLeft(last, "0")
	if last == "" {
		last = "0"
	}
	groups[len(groups)-1] = last

	var sb strings.Builder
	if z.Sign() < 0 {
		sb.WriteByte('-')
	}
	for i := len(groups) - 1; i >= 0; i-- {
		sb.WriteString(groups[i])
	}
	return sb.String()
}

// parseDecimal reads a signed decimal literal into a bigint.BigInt by
// accumulating digit by digit with AddDigit/MulDigit — a minimal,
// CLI-local stand-in for the general radix parsing the core package
// deliberately doesn't provide.
func parseDecimal(s string) (*bigint.BigInt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty number")
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("no digits after sign")
	}

	z := bigint.New()
	if _, err := z.SetUint64(0); err != nil {
		return nil, err
	}
	ten := bigint.Digit(10)
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid digit %q in %q", r, s)
		}
		if err := z.MulDigit(z, ten); err != nil {
			return nil, err
		}
		if err := z.AddDigit(z, bigint.Digit(r-'0')); err != nil {
			return nil, err
		}
	}
	if neg && !z.IsZero() {
		if err := z.Neg(z); err != nil {
			return nil, err
		}
	}
	return z, nil
}
