// birthday reads newline-separated category weights from stdin and
// answers generalized birthday-problem questions about draws from
// that distribution.
//
// With -n it reports the probability that at least two of n draws
// land in the same category, along with the expected number of
// colliding pairs. With -q it reports the fewest draws whose
// collision probability reaches the target. Weights are normalized
// to probabilities, so counts (say, per-surname populations) can be
// fed in directly.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/aclements/go-birthday"
	"gonum.org/v1/gonum/floats"
)

var methods = map[string]birthday.Method{
	"exact":  birthday.Exact,
	"fast":   birthday.ExactFast,
	"approx": birthday.MaseApprox,
}

func main() {
	draws := flag.Int("n", 0, "report the collision probability of `draws` draws")
	target := flag.Float64("q", math.NaN(), "report the fewest draws whose collision probability reaches `target`")
	methodName := flag.String("method", "fast", "computation `method`: exact, fast, or approx")
	flag.Parse()

	method, ok := methods[*methodName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown method %q; methods are exact, fast, and approx\n", *methodName)
		os.Exit(2)
	}
	if *draws < 1 && math.IsNaN(*target) {
		fmt.Fprintln(os.Stderr, "usage: birthday [-method name] {-n draws | -q target} < weights")
		flag.PrintDefaults()
		os.Exit(2)
	}

	prob := readWeights(os.Stdin)

	if *draws >= 1 {
		res, err := birthday.CollisionProb(*draws, prob, method)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if res.Advice != "" {
			fmt.Fprintln(os.Stderr, "warning:", res.Advice)
		}
		if res.Unstable {
			fmt.Fprintf(os.Stderr, "warning: probability %g is outside [0, 1]; the result is numerically unstable\n", res.Prob)
		}
		fmt.Printf("categories %d  draws %d  P(collision) %.6g  E[colliding pairs] %.6g\n",
			len(prob), *draws, res.Prob, birthday.ExpectedCollisions(*draws, prob))
	}

	if !math.IsNaN(*target) {
		n, err := birthday.MinDraws(*target, prob)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("target %g  min draws %d\n", *target, n)
	}
}

// readWeights reads one non-negative category weight per line and
// normalizes the weights to probabilities.
func readWeights(r io.Reader) []float64 {
	var w []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		w = append(w, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	total := floats.Sum(w)
	if total <= 0 {
		fmt.Fprintln(os.Stderr, "no positive category weights on stdin")
		os.Exit(1)
	}
	floats.Scale(1/total, w)
	return w
}
