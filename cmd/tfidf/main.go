// Command tfidf scores a posting list with a TF-IDF weighting scheme.
//
//	tfidf --config term.yaml --scheme Ptn --explain
//
// The configuration file names the corpus statistics of one query term
// and its postings (see package config). The command gathers only the
// statistics the scheme declares, prints each posting's score, the
// scheme's upper bound, and optionally the envelope a coordinator would
// ship to remote shards.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"

	"github.com/balzaczyy/goweight/config"
	"github.com/balzaczyy/goweight/core/search/remote"
	"github.com/balzaczyy/goweight/core/search/weight"
)

var log = logging.MustGetLogger("tfidf")

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "tfidf: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.INFO, "")
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath string
		scheme     string
		slope      float64
		delta      float64
		factor     float64
		explain    bool
		envelope   bool
		verbose    bool
	)
	flagSet := pflag.NewFlagSet("tfidf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configPath, "config", "c", "", "path to a YAML file with statistics and postings")
	flagSet.StringVarP(&scheme, "scheme", "s", config.DefaultScheme, "normalization string [wdf][idf][wt], e.g. Ptn")
	flagSet.Float64Var(&slope, "slope", config.DefaultSlope, "slope of the pivoted wdf normalization")
	flagSet.Float64Var(&delta, "delta", config.DefaultDelta, "delta of the pivoted wdf normalization")
	flagSet.Float64Var(&factor, "factor", config.DefaultFactor, "query-level normalization factor")
	flagSet.BoolVarP(&explain, "explain", "e", false, "print how each score was computed")
	flagSet.BoolVar(&envelope, "envelope", false, "print the remote shard envelope of the scheme")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	setupLogging(stderr, verbose)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("scheme") {
		cfg.Scheme = scheme
	}
	if flagSet.Changed("slope") {
		cfg.Slope = slope
	}
	if flagSet.Changed("delta") {
		cfg.Delta = delta
	}
	if flagSet.Changed("factor") {
		cfg.Factor = factor
	}
	w, err := weight.NewTfIdfWeightFromNormalsWithParams(cfg.Scheme, cfg.Slope, cfg.Delta)
	if err != nil {
		return err
	}
	if err := cfg.Validate(w.Need()); err != nil {
		return err
	}
	log.Debugf("Scheme %v needs %v", w, w.Need())
	w.Init(weight.Snapshot(cfg.Stats.Statistics(), w.Need()), cfg.Factor)

	out := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(out, "doc\twdf\tdoclen\tuniqterms\tscore\n")
	max := w.MaxContribution()
	for i, p := range cfg.Postings {
		doc := p.Doc
		if doc == "" {
			doc = fmt.Sprint(i)
		}
		score := w.ScoreTerm(p.Wdf, p.DocLength, p.UniqueTerms)
		if score > max {
			log.Errorf("Score %v of %v exceeds upper bound %v", score, doc, max)
		}
		fmt.Fprintf(out, "%v\t%v\t%v\t%v\t%.6f\n", doc, p.Wdf, p.DocLength, p.UniqueTerms, score)
	}
	fmt.Fprintf(out, "max\t%v\t%v\t\t%.6f\n", cfg.Stats.WdfMax, cfg.Stats.DocLengthMin, max)
	if err := out.Flush(); err != nil {
		return err
	}

	if explain {
		for _, p := range cfg.Postings {
			fmt.Fprint(stdout, w.Explain(p.Wdf, p.DocLength, p.UniqueTerms))
		}
	}

	if envelope {
		data, err := remote.Pack(w)
		if err != nil {
			return err
		}
		// prove the receiving side rebuilds the same configuration
		if _, err := remote.Unpack(data); err != nil {
			return err
		}
		fp := remote.FingerprintOf(w.Name(), w.Serialize())
		fmt.Fprintf(stdout, "fingerprint %v\nenvelope %v\n", fp, hex.EncodeToString(data))
	}
	return nil
}
