package locale

import (
	"testing"
	"time"
)

func TestResolveExactTag(t *testing.T) {
	if lang := Resolve("en-US"); lang.Tag != EnglishUS {
		t.Errorf("expected en-US, got %s", lang.Tag)
	}
	if lang := Resolve("es"); lang.Tag != Spanish {
		t.Errorf("expected es, got %s", lang.Tag)
	}
}

func TestResolveRegionalVariantFallsBackToBase(t *testing.T) {
	if lang := Resolve("es-CL"); lang.Tag != Spanish {
		t.Errorf("expected es-CL to resolve to es, got %s", lang.Tag)
	}
}

func TestResolveUnknownTagFallsBackToEnglish(t *testing.T) {
	for _, tag := range []string{"fr", "de-DE", "", "-"} {
		if lang := Resolve(tag); lang.Tag != EnglishUS {
			t.Errorf("tag %q: expected en-US fallback, got %s", tag, lang.Tag)
		}
	}
}

func TestDayLabels(t *testing.T) {
	en := Resolve(EnglishUS)
	if got := en.DayLabel(time.Sunday); got != "Sunday" {
		t.Errorf("expected Sunday, got %s", got)
	}
	if got := en.DayLabel(time.Saturday); got != "Saturday" {
		t.Errorf("expected Saturday, got %s", got)
	}

	es := Resolve(Spanish)
	if got := es.DayLabel(time.Wednesday); got != "miércoles" {
		t.Errorf("expected miércoles, got %s", got)
	}
}

func TestFormatTimeUses24hClock(t *testing.T) {
	ts := time.Date(2025, 6, 2, 14, 5, 0, 0, time.UTC)
	if got := Resolve(EnglishUS).FormatTime(ts); got != "14:05" {
		t.Errorf("expected 14:05, got %s", got)
	}
}
