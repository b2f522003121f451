package disclosure

import "testing"

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		round int
		want  Tier
	}{
		{1, TierEarly},
		{2, TierEarly},
		{3, TierMid},
		{4, TierMid},
		{5, TierLate},
		{6, TierLate},
		{12, TierLate},
	}
	for _, c := range cases {
		if got := TierFor(c.round); got != c.want {
			t.Errorf("TierFor(%d) = %s, want %s", c.round, got, c.want)
		}
	}
}

func TestTierMonotone(t *testing.T) {
	rank := map[Tier]int{TierEarly: 0, TierMid: 1, TierLate: 2}
	prev := TierFor(1)
	for r := 2; r <= 20; r++ {
		cur := TierFor(r)
		if rank[cur] < rank[prev] {
			t.Fatalf("tier decreased at round %d: %s -> %s", r, prev, cur)
		}
		prev = cur
	}
}

func TestInstructionTableComplete(t *testing.T) {
	for _, tier := range []Tier{TierEarly, TierMid, TierLate} {
		inst, ok := Instructions[tier]
		if !ok {
			t.Fatalf("no instruction for tier %s", tier)
		}
		if inst.Tier != tier {
			t.Errorf("instruction for %s carries tier %s", tier, inst.Tier)
		}
		if inst.Guidance == "" {
			t.Errorf("empty guidance for tier %s", tier)
		}
	}
}

func TestInstructionForFollowsTier(t *testing.T) {
	for r := 1; r <= 8; r++ {
		inst := InstructionFor(r)
		if inst.Tier != TierFor(r) {
			t.Errorf("round %d: instruction tier %s != TierFor %s", r, inst.Tier, TierFor(r))
		}
	}
}
