// Package testgen generates riscv-tests style test cases for one instruction variant.
//
// A Generator binds an instruction's reference operation to an operand kind
// (register or one of the immediate encodings) and emits four categories of
// tests through the test_macros.h signatures of that kind:
//
//   - arithmetic: TEST_<K>_OP checks the result itself
//   - source equals destination: TEST_<K>_SRC1_EQ_DEST
//   - bypass: source and destination forwarding at every NOP bubble depth,
//     split between rs1 and rs2 for register forms
//   - zero register: x0 as rs1 and as rd
//
// Example:
//
//	op, _ := model.Bind(model.Avg, lane.Half, false)
//	g, err := testgen.New(testgen.Config{
//		Mnemonic:   "pv.avg.h",
//		Kind:       testgen.Register,
//		Operation:  op,
//		Seed:       1,
//		MaxNops:    testgen.DefaultMaxNops,
//		ArithCount: testgen.DefaultArithCount,
//	})
//	g.AddArithTest(0x7f7e7d7c, 0x7b7a7978)
//	g.GenAllTests(15, 2)
//	g.Suite().WriteTo(f)
//
// Test numbers start at 2 and increase by one per emitted line, so a failing
// test reported by the harness maps back to a single line of the suite.
package testgen
