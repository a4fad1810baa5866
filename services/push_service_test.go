package services

import "testing"

func TestStreakMilestoneGating(t *testing.T) {
	t.Parallel()
	p := &PushService{}
	// non-milestone streaks return before touching SNS or the device table;
	// reaching either on the zero-value service would panic.
	for _, streak := range []int{0, 1, 6, 8, 29, 31, 100} {
		p.NotifyStreakMilestone(1, streak)
	}
}

func TestPlatformArnRejectsUnknownPlatform(t *testing.T) {
	t.Parallel()
	p := &PushService{}
	if _, err := p.platformArn("blackberry"); err == nil {
		t.Fatalf("unknown platform must error")
	}
}
