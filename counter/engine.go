// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"net"
	"sort"
	"strconv"
)

// Update increments node's clock and adds delta to its count, returning a
// new context with the updated tuple moved to offset 0 (MRU ordering). It
// never mutates ctx. If node has no tuple yet, a new stepLength-sized slot
// is prepended with clock=1, count=delta.
func Update(ctx Context, node net.IP, delta int64) (Context, error) {
	id, err := AddressBytes(node)
	if err != nil {
		return nil, err
	}
	l, err := idLen(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(ctx, l); err != nil {
		return nil, err
	}
	step := stepLength(l)
	n := tupleCount(ctx, l)

	for i := 0; i < n; i++ {
		t := readTuple(ctx, l, i)
		if bytesEqual(t.ID, id) {
			out := make(Context, len(ctx))
			writeTuple(out, l, 0, id, t.Clock+1, t.Count+delta)
			// Tuples at [0, i) shift right by one slot; tuples at (i, n)
			// keep their offset.
			copy(out[step:step+i*step], ctx[0:i*step])
			if i+1 < n {
				copy(out[(i+1)*step:], ctx[(i+1)*step:])
			}
			return out, nil
		}
	}

	out := make(Context, len(ctx)+step)
	writeTuple(out, l, 0, id, 1, delta)
	copy(out[step:], ctx)
	return out, nil
}

// Diff determines the version-vector relationship between left and right.
// Only clocks are consulted; counts are payload, not causal coordinate.
func Diff(left, right Context) (Relationship, error) {
	ll, err := idLen(left)
	if err != nil {
		return 0, err
	}
	lr, err := idLen(right)
	if err != nil {
		return 0, err
	}
	if err := validate(left, ll); err != nil {
		return 0, err
	}
	if err := validate(right, lr); err != nil {
		return 0, err
	}

	a := sortedTuples(left, ll)
	b := sortedTuples(right, lr)

	rel := Equal
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := bytesCompare(a[i].ID, b[j].ID)
		switch {
		case c == 0:
			switch {
			case a[i].Clock == b[j].Clock:
				// keep relation
			case a[i].Clock > b[j].Clock:
				rel = widen(rel, GreaterThan)
			default:
				rel = widen(rel, LessThan)
			}
			i++
			j++
		case c < 0:
			// id present only on left
			rel = widen(rel, GreaterThan)
			i++
		default:
			// id present only on right
			rel = widen(rel, LessThan)
			j++
		}
		if rel == Disjoint {
			return Disjoint, nil
		}
	}
	if i < len(a) {
		rel = widen(rel, GreaterThan)
	}
	if j < len(b) {
		rel = widen(rel, LessThan)
	}
	return rel, nil
}

// widen applies the diff state machine's widening rule: EQUAL can widen to
// either GREATER_THAN or LESS_THAN; a direction that disagrees with an
// already-widened relation collapses it to DISJOINT.
func widen(current, direction Relationship) Relationship {
	switch current {
	case Equal:
		return direction
	case direction:
		return current
	default:
		return Disjoint
	}
}

// Merge reconciles left and right into a context with exactly one tuple per
// distinct Id, sorted by descending clock with a deterministic tie-break.
// The local node's own Id sums clocks and counts across the two sides when
// their clocks differ (each side then carries a distinct local increment
// the other hasn't seen); at equal clocks the entry is kept as-is, so
// merging a context with itself never double-counts its own tuple. Any
// other Id keeps whichever side has the higher clock, with ties kept on
// the existing (left) entry.
func Merge(left, right Context) (Context, error) {
	ll, err := idLen(left)
	if err != nil {
		return nil, err
	}
	lr, err := idLen(right)
	if err != nil {
		return nil, err
	}
	if err := validate(left, ll); err != nil {
		return nil, err
	}
	if err := validate(right, lr); err != nil {
		return nil, err
	}

	l := ll
	if len(left) == 0 {
		l = lr
	}
	localID := localIDForLen(l)

	type slot struct {
		id    []byte
		clock uint64
		count int64
	}
	order := make([][]byte, 0, tupleCount(left, ll)+tupleCount(right, lr))
	byID := make(map[string]*slot, tupleCount(left, ll)+tupleCount(right, lr))

	for i := 0; i < tupleCount(left, ll); i++ {
		t := readTuple(left, ll, i)
		byID[string(t.ID)] = &slot{id: t.ID, clock: t.Clock, count: t.Count}
		order = append(order, t.ID)
	}
	for i := 0; i < tupleCount(right, lr); i++ {
		t := readTuple(right, lr, i)
		key := string(t.ID)
		existing, seen := byID[key]
		if !seen {
			byID[key] = &slot{id: t.ID, clock: t.Clock, count: t.Count}
			order = append(order, t.ID)
			continue
		}
		if localID != nil && bytesEqual(t.ID, localID) {
			// Equal clocks mean both sides observed the same local write
			// (e.g. merging a context with itself); summing would double
			// it, breaking idempotence. Differing clocks (S4) mean each
			// side carries a distinct, not-yet-reconciled local increment,
			// so clocks and counts are summed rather than maxed.
			if t.Clock != existing.clock {
				existing.clock += t.Clock
				existing.count += t.Count
			}
			continue
		}
		if t.Clock > existing.clock {
			existing.clock = t.Clock
			existing.count = t.Count
		}
		// ties and left-greater keep the existing entry.
	}

	slots := make([]*slot, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		key := string(id)
		if seen[key] {
			continue
		}
		seen[key] = true
		slots = append(slots, byID[key])
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].clock != slots[j].clock {
			return slots[i].clock > slots[j].clock
		}
		return bytesCompare(slots[i].id, slots[j].id) < 0
	})

	step := stepLength(l)
	out := make(Context, len(slots)*step)
	for i, s := range slots {
		writeTuple(out, l, i, s.id, s.clock, s.count)
	}
	return out, nil
}

// Total sums every tuple's count field, wrapping as a two's-complement
// signed 64-bit sum.
func Total(ctx Context) (int64, error) {
	l, err := idLen(ctx)
	if err != nil {
		return 0, err
	}
	if err := validate(ctx, l); err != nil {
		return 0, err
	}
	var sum uint64
	for i := 0; i < tupleCount(ctx, l); i++ {
		t := readTuple(ctx, l, i)
		sum += uint64(t.Count)
	}
	return int64(sum), nil
}

// CleanNodeCounts removes node's tuple from ctx, returning a new buffer
// shorter by one step on a hit, or ctx unchanged if node is absent.
func CleanNodeCounts(ctx Context, node net.IP) (Context, error) {
	id, err := AddressBytes(node)
	if err != nil {
		return nil, err
	}
	l, err := idLen(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(ctx, l); err != nil {
		return nil, err
	}
	step := stepLength(l)
	n := tupleCount(ctx, l)
	for i := 0; i < n; i++ {
		t := readTuple(ctx, l, i)
		if bytesEqual(t.ID, id) {
			out := make(Context, len(ctx)-step)
			off := i * step
			copy(out, ctx[:off])
			copy(out[off:], ctx[off+step:])
			return out, nil
		}
	}
	return ctx, nil
}

// String renders ctx as [{host, clock, count}, ...]; a tuple whose Id
// cannot be decoded as an IP renders as "?.?.?.?".
func (ctx Context) String() string {
	l, err := idLen(ctx)
	if err != nil {
		return "[]"
	}
	if err := validate(ctx, l); err != nil {
		return "[]"
	}
	out := "["
	for i := 0; i < tupleCount(ctx, l); i++ {
		t := readTuple(ctx, l, i)
		if i > 0 {
			out += ", "
		}
		host := "?.?.?.?"
		if len(t.ID) == net.IPv4len || len(t.ID) == net.IPv6len {
			host = net.IP(t.ID).String()
		}
		out += "{" + host + ", " + strconv.FormatUint(t.Clock, 10) + ", " + strconv.FormatInt(t.Count, 10) + "}"
	}
	out += "]"
	return out
}

func sortedTuples(ctx Context, l int) []Tuple {
	n := tupleCount(ctx, l)
	out := make([]Tuple, n)
	for i := 0; i < n; i++ {
		out[i] = readTuple(ctx, l, i)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytesCompare(out[i].ID, out[j].ID) < 0
	})
	return out
}

func bytesEqual(a, b []byte) bool {
	return bytesCompare(a, b) == 0
}
