package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	PD4 "github.com/Iasonaspg/PD4"
	"github.com/Iasonaspg/PD4/EdgeList"
)

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func readProblem(indexBase int, args []string) (*PD4.CSR, error) {
	if len(args) < 1 {
		log.Fatalln("Missing input file.")
	}
	filename := args[0]
	log.Printf("Reading edge list file: %v\n", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	A, err := EdgeList.Read(f, indexBase)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = f.Close(); err != nil {
		return nil, err
	}
	log.Printf("%v nodes, %v entries\n", A.NRows, A.NNZ)
	return A, nil
}

func main() {
	var cpuprofile, memprofile string
	var indexBase int
	var check bool
	cfg := PD4.DefaultLaunch()
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional output file for a cpu profile")
	flag.StringVar(&memprofile, "memprofile", "", "optional output file for a mem profile")
	flag.IntVar(&indexBase, "base", 0, "index base of the edge list (0 or 1)")
	flag.IntVar(&cfg.Grid, "grid", cfg.Grid, "blocks per grid")
	flag.IntVar(&cfg.Block, "block", cfg.Block, "threads per block")
	flag.IntVar(&cfg.Warp, "warp", cfg.Warp, "lanes per warp")
	flag.BoolVar(&check, "check", false, "cross-check the result with GraphBLAS")
	flag.Parse()

	ntrials := 3
	A, err := readProblem(indexBase, flag.Args())
	try(err)
	try(A.CheckSymmetry())

	log.Println("Warmup.")
	tic := time.Now()
	ntriangles, err := PD4.TriangleCount(A, cfg)
	try(err)
	toc := time.Now()
	log.Printf("Warmup: Triangles %v time %v\n", ntriangles, toc.Sub(tic))

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	for trial := 0; trial < ntrials; trial++ {
		tic = time.Now()
		nt, err := PD4.TriangleCount(A, cfg)
		try(err)
		toc = time.Now()
		log.Printf("trial %v: duration: %v triangles: %v\n", trial, toc.Sub(tic), nt)
		if nt != ntriangles {
			log.Fatalf("trial %v: triangles %v differ from warmup %v", trial, nt, ntriangles)
		}
	}

	tic = time.Now()
	nt := PD4.TriangleCountSerial(A)
	toc = time.Now()
	log.Printf("serial reference: duration: %v triangles: %v\n", toc.Sub(tic), nt)
	if nt != ntriangles {
		log.Fatalf("serial reference %v differs from parallel count %v", nt, ntriangles)
	}

	if check {
		tic = time.Now()
		nt = PD4.TriangleCountCheck(A)
		toc = time.Now()
		log.Printf("GraphBLAS check: duration: %v triangles: %v\n", toc.Sub(tic), nt)
		if nt != ntriangles {
			log.Fatalf("GraphBLAS check %v differs from parallel count %v", nt, ntriangles)
		}
	}

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err = pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
