// Package xpulptestgen generates riscv-tests style assembly suites for the
// PULP packed-SIMD (pv.*) instructions.
//
// Every suite pairs a random or directed source operand pair with the result
// computed by a Go model of the instruction, and emits it through the
// TEST_RR_* and TEST_*IMM*_* macros of the riscv-tests framework.
//
// # Architecture Overview
//
//	xpulptestgen/
//	├── lane/       Split, broadcast and join of 32-bit words into 8/16-bit lanes
//	├── model/      Per-lane reference models (avg, avgu, cmpgt, max) and registry
//	├── macro/      Named macro templates and operand formats
//	├── testgen/    Operand kinds, test generator and suite rendering
//	├── driver/     Variant catalog, per-variant seeding and file output
//	├── errors/     Structured error types
//	└── cmd/pvgen/  Command line tool and interactive evaluator
//
// # Quick Start
//
// Generate every pv.avg variant:
//
//	d, err := driver.New(driver.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	variants, err := driver.Select([]string{"pv.avg"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	paths, err := d.WriteAll("rv32uxpulpvect", variants)
//
// Or drive a single generator with a custom operation:
//
//	op, _ := model.Bind(model.Max, lane.Half, false)
//	g, _ := testgen.New(testgen.Config{
//	    Mnemonic:   "pv.max.h",
//	    Kind:       testgen.Register,
//	    Operation:  op,
//	    Seed:       7,
//	    MaxNops:    testgen.DefaultMaxNops,
//	    ArithCount: 20,
//	})
//	_ = g.GenAllTests(15, 2)
//	fmt.Print(g.Suite().Render())
//
// # Logging
//
// Packages testgen and driver log through zap and are silent by default.
// Install a logger with their SetLogger functions.
package xpulptestgen
