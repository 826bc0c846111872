package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/kho/easy"

	"github.com/hfst-go/ospell"
)

func main() {
	var args struct {
		Errmodel string `name:"errmodel" usage:"mutator (error model) OL file"`
		Lexicon  string `name:"lexicon" usage:"lexicon (acceptor) OL file"`
	}
	nbest := flag.Int("nbest", 5, "maximum number of suggestions, 0 = unlimited")
	maxWeight := flag.Float64("max_weight", -1, "reject suggestions at or above this weight, <0 = no limit")
	beam := flag.Float64("beam", -1, "reject suggestions beam above the best seen, <0 = no limit")
	timeCutoff := flag.Float64("time_cutoff", 0, "stop searching after this many seconds, 0 = no limit")
	analyse := flag.Bool("analyse", false, "print analyses instead of corrections")
	easy.ParseFlagsAndArgs(&args)

	var speller *ospell.Speller
	elapsed := easy.Timed(func() {
		var err error
		speller, err = ospell.LoadLegacyFiles(args.Errmodel, args.Lexicon)
		if err != nil {
			glog.Fatalf("error loading transducers: %v", err)
		}
	})
	glog.Infof("loading transducers took %v", elapsed)

	speller.SuggestionsMax = *nbest
	speller.MaxWeight = ospell.Weight(*maxWeight)
	speller.Beam = ospell.Weight(*beam)
	speller.TimeCutoffS = *timeCutoff

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		word := in.Text()
		if word == "" {
			continue
		}
		if *analyse {
			for _, a := range speller.Analyse(word, false) {
				fmt.Printf("%s\t%s\t%g\n", word, a.Output, a.Weight)
			}
			continue
		}
		if speller.Check(word) {
			fmt.Printf("%s\tOK\n", word)
			continue
		}
		results := speller.Suggest(word)
		if len(results) == 0 {
			fmt.Printf("%s\t*** no suggestions ***\n", word)
			continue
		}
		for _, r := range results {
			fmt.Printf("%s\t%s\t%g\n", word, r.Output, r.Weight)
		}
	}
	if err := in.Err(); err != nil {
		glog.Fatal("error reading input: ", err)
	}
}
