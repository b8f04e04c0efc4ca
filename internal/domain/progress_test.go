package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPhaseForWeek(t *testing.T) {
	tests := []struct {
		week int
		want int
	}{
		{1, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3}, {12, 3}, {0, 1},
	}

	for _, tt := range tests {
		if got := PhaseForWeek(tt.week); got != tt.want {
			t.Errorf("PhaseForWeek(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}
}

func TestProgramProgress_WeekRange(t *testing.T) {
	progress := &ProgramProgress{
		StartDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	start, end := progress.WeekRange(1)
	if !start.Equal(progress.StartDate) {
		t.Errorf("week 1 start = %v, want the start date", start)
	}
	if !end.Equal(time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week 1 end = %v, want 2024-03-17", end)
	}

	start, end = progress.WeekRange(3)
	if !start.Equal(time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week 3 start = %v, want 2024-03-25", start)
	}
	if !end.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week 3 end = %v, want 2024-03-31", end)
	}
}

func TestProgramProgress_History(t *testing.T) {
	progress := &ProgramProgress{UserID: uuid.New()}

	if entries := progress.History(); len(entries) != 0 {
		t.Fatalf("empty column decoded to %v, want no entries", entries)
	}

	progress.DecisionHistory = progress.AppendHistory(DecisionHistoryEntry{
		Week:       3,
		Decision:   DecisionExtend,
		Note:       "first extension",
		ExecutedAt: time.Date(2024, 4, 1, 2, 0, 0, 0, time.UTC),
	})
	progress.DecisionHistory = progress.AppendHistory(DecisionHistoryEntry{
		Week:     3,
		Decision: DecisionAdvance,
	})

	entries := progress.History()
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[0].Decision != DecisionExtend || entries[1].Decision != DecisionAdvance {
		t.Errorf("history order wrong: %v", entries)
	}

	// A corrupt column decodes to an empty history.
	progress.DecisionHistory = []byte("{not json")
	if entries := progress.History(); len(entries) != 0 {
		t.Errorf("corrupt column decoded to %v, want no entries", entries)
	}
}

func TestTargetModifications_Validate(t *testing.T) {
	base := TargetSet{Steps: 8000, WaterOz: 80, SleepHr: 8}

	tests := []struct {
		name    string
		mods    TargetModifications
		wantErr bool
	}{
		{
			name: "valid steps reduction",
			mods: TargetModifications{Steps: intp(6000)},
		},
		{
			name:    "steps below the floor",
			mods:    TargetModifications{Steps: intp(2500)},
			wantErr: true,
		},
		{
			name:    "steps past the maximum reduction",
			mods:    TargetModifications{Steps: intp(4500)},
			wantErr: true,
		},
		{
			name: "valid water reduction",
			mods: TargetModifications{WaterOz: floatp(64)},
		},
		{
			name:    "water below the floor",
			mods:    TargetModifications{WaterOz: floatp(25)},
			wantErr: true,
		},
		{
			name: "valid sleep reduction",
			mods: TargetModifications{SleepHr: floatp(6.4)},
		},
		{
			name:    "sleep past the maximum reduction",
			mods:    TargetModifications{SleepHr: floatp(5.5)},
			wantErr: true,
		},
		{
			name: "no numeric changes",
			mods: TargetModifications{FocusPillar: PillarMood},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mods.Validate(base)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTargetModifications_Apply(t *testing.T) {
	base := TargetSet{Steps: 8000, WaterOz: 80, SleepHr: 8}
	mods := TargetModifications{SleepHr: floatp(6.4)}

	got := mods.Apply(base)

	if got.SleepHr != 6.4 {
		t.Errorf("SleepHr = %v, want 6.4", got.SleepHr)
	}
	if got.Steps != base.Steps || got.WaterOz != base.WaterOz {
		t.Errorf("unmodified pillars changed: %+v", got)
	}
}

func intp(i int) *int { return &i }

func floatp(f float64) *float64 { return &f }
