package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/xpulp-testgen/driver"
	"github.com/wippyai/xpulp-testgen/lane"
	"github.com/wippyai/xpulp-testgen/testgen"
)

type evaluation struct {
	line      string
	src1Lanes []int64
	src2Lanes []int64
	resLanes  []int64
	res       uint32
	value     int64
}

// parseOperand accepts decimal, 0x hex, 0b binary and a leading minus.
func parseOperand(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return 0, fmt.Errorf("empty operand")
	}
	return strconv.ParseInt(s, 0, 64)
}

func evaluate(d *driver.Driver, v driver.Variant, src1Text, src2Text string) (*evaluation, error) {
	src1, err := parseOperand(src1Text)
	if err != nil {
		return nil, fmt.Errorf("src1: %w", err)
	}
	src2, err := parseOperand(src2Text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Kind.Spec().Param, err)
	}

	g, err := d.Generator(v)
	if err != nil {
		return nil, err
	}
	if err := g.AddArithTest(src1, src2); err != nil {
		return nil, err
	}
	res, err := g.Expected(src1, src2)
	if err != nil {
		return nil, err
	}

	m := v.Model
	ev := &evaluation{
		line:  g.Suite().Lines(testgen.CategoryArith)[0],
		res:   res,
		value: m.Interpret(res),
	}
	if ev.src1Lanes, err = lane.Split(uint32(src1), v.Width, m.Src1Signed); err != nil {
		return nil, err
	}
	if v.Broadcast {
		ev.src2Lanes, err = lane.Broadcast(uint32(src2), v.Width, m.Src2Signed)
	} else {
		ev.src2Lanes, err = lane.Split(uint32(src2), v.Width, m.Src2Signed)
	}
	if err != nil {
		return nil, err
	}
	if ev.resLanes, err = lane.Split(res, v.Width, m.ResultSigned); err != nil {
		return nil, err
	}
	return ev, nil
}

func formatLanes(lanes []int64) string {
	parts := make([]string, len(lanes))
	// most significant lane first, as in the hex word
	for i := range lanes {
		parts[i] = strconv.FormatInt(lanes[len(lanes)-1-i], 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
