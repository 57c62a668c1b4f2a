// floatbits decodes binary floating-point values given as bit strings,
// mostly for learning and debugging float layouts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/avdva/floatbits"
)

const help = `Usage: floatbits [flags] BITS...

Decodes every BITS argument, like "0 10001001 00110100100111010011101",
as a sign bit, exponent bits, and fraction bits. Spaces and underscores
between the bits are ignored.
`

var (
	formatFlag = flag.String("format", "float32", "predefined format `name`, one of: "+formatNames())
	kFlag      = flag.Int("k", 0, "exponent width of a custom format, overrides -format")
	pFlag      = flag.Int("p", 0, "precision of a custom format, including the implicit bit")
	biasFlag   = flag.Int("bias", 0, "exponent bias of a custom format, defaults to 2^(k-1)-1")
	outputFlag = flag.String("output", "table", "output `encoding`: table, json, or yaml")
	listFlag   = flag.Bool("list", false, "print the predefined formats and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if err := run(context.Background(), os.Stdout); err != nil {
		glog.Exitf("floatbits: %v", err)
	}
}

func run(ctx context.Context, w io.Writer) error {
	if *listFlag {
		return writeFormats(w)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("no bit strings given")
	}
	biasSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "bias" {
			biasSet = true
		}
	})
	f, err := selectFormat(*formatFlag, *kFlag, *pFlag, *biasFlag, biasSet)
	if err != nil {
		return err
	}
	glog.V(1).Infof("using format %s, %d bits", f, f.Width())
	values, err := decodeAll(ctx, f, flag.Args())
	if err != nil {
		return err
	}
	return write(w, *outputFlag, values)
}

func formatNames() string {
	var names []string
	for _, f := range floatbits.Formats() {
		names = append(names, strings.ToLower(f.Name))
	}
	return strings.Join(names, ", ")
}

// selectFormat returns a custom format if k or p is set, and a predefined one otherwise.
func selectFormat(name string, k, p, bias int, biasSet bool) (floatbits.Format, error) {
	if k == 0 && p == 0 {
		if biasSet {
			return floatbits.Format{}, errors.New("-bias requires -k and -p")
		}
		f, ok := floatbits.LookupFormat(name)
		if !ok {
			return floatbits.Format{}, errors.Errorf("unknown format %q, expected one of: %s", name, formatNames())
		}
		return f, nil
	}
	if !biasSet && k > 0 && k <= floatbits.MaxExponentBits {
		bias = floatbits.DefaultBias(k)
	}
	f, err := floatbits.NewFormat("", k, p, bias)
	if err != nil {
		return floatbits.Format{}, errors.Wrap(err, "invalid custom format")
	}
	return f, nil
}

// decodeAll decodes inputs concurrently. The result keeps the order of inputs.
func decodeAll(ctx context.Context, f floatbits.Format, inputs []string) ([]floatbits.Value, error) {
	values := make([]floatbits.Value, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := floatbits.Parse(f, input)
			if err != nil {
				return errors.Wrapf(err, "argument %d %q", i+1, input)
			}
			glog.V(1).Infof("decoded %s as %s %v", v.StrBits(), v.Kind(), v)
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func write(w io.Writer, encoding string, values []floatbits.Value) error {
	switch encoding {
	case "table":
		return writeTable(w, values)
	case "json":
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling json")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		data, err := yaml.Marshal(values)
		if err != nil {
			return errors.Wrap(err, "marshaling yaml")
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.Errorf("unknown output encoding %q", encoding)
	}
}

func writeTable(w io.Writer, values []floatbits.Value) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "bits\tkind\tvalue\tsign\texponent\tfraction\tsignificand")
	for _, v := range values {
		significand := "-"
		if s, ok := v.Significand(); ok {
			significand = strconv.FormatFloat(s, 'g', -1, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%v\t%s\n",
			v.StrBits(), v.Kind(), v, v.Sign(), v.Exponent(), v.Fraction(), significand)
	}
	return tw.Flush()
}

func writeFormats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tk\tp\tbias\twidth")
	for _, f := range floatbits.Formats() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", strings.ToLower(f.Name), f.K, f.P, f.Bias, f.Width())
	}
	return tw.Flush()
}
