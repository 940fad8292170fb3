package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatValue renders v the way reports print it: fixed notation with prec
// fractional digits for floats, plain decimal for integers.
func FormatValue[E Number](v E, prec int) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', prec, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', prec, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return fmt.Sprint(v)
}

// FormatSequence renders s with delim after every element.
func FormatSequence[E Number](s []E, prec int, delim string) string {
	var b strings.Builder
	for _, v := range s {
		b.WriteString(FormatValue(v, prec))
		b.WriteString(delim)
	}
	return b.String()
}

// reportLine renders one algorithm report. last is the elapsed time of the
// trial that just finished; multi-trial runs print Sum / Trials instead.
func (s *Session[E]) reportLine(alg Algorithm, sorted []E, last float64) string {
	var b strings.Builder
	if !s.cfg.Quiet {
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%-*s", s.width, alg.Label)
	if s.cfg.ShowTime {
		if s.cfg.Trials == 1 {
			fmt.Fprintf(&b, "CPU time: %.6f s", last)
		} else {
			fmt.Fprintf(&b, "Average CPU time: %.6f s", alg.Sum/float64(s.cfg.Trials))
		}
	}
	b.WriteByte('\n')
	if !s.cfg.Quiet {
		b.WriteString(FormatSequence(sorted, s.cfg.Precision, s.cfg.Delimiter))
	}
	return b.String()
}

func (s *Session[E]) write(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.logger.Warn("report write failed", "error", err)
	}
}
