package domain

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	payments := []Payment{
		{Amount: 100, CreatedAt: now},
		{Amount: 200, CreatedAt: now.Add(-3 * time.Hour)},
		{Amount: 50, CreatedAt: time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)},
		{Amount: 500, CreatedAt: time.Date(2025, time.February, 15, 12, 0, 0, 0, time.UTC)},
		{Amount: 700, CreatedAt: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)},
	}

	got := Summarize(payments, now)
	want := RevenueSummary{Total: 1550, ThisMonth: 350, Today: 300}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil, time.Now()); got != (RevenueSummary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
}
