package domain

import (
	"errors"
	"sync"
	"testing"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name    string
		color   ObjectColor
		want    ConveyorBelt
		wantErr bool
	}{
		{name: "black goes to A", color: Black, want: BeltA},
		{name: "transparent goes to B", color: Transparent, want: BeltB},
		{name: "colorful goes to C", color: Colorful, want: BeltC},
		{name: "zero value is rejected", color: ColorUnknown, want: BeltUnknown, wantErr: true},
		{name: "out of range is rejected", color: ObjectColor(42), want: BeltUnknown, wantErr: true},
		{name: "negative is rejected", color: ObjectColor(-1), want: BeltUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Route(tt.color)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Route(%v) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnrecognizedCategory) {
				t.Errorf("Route(%v) error = %v, want ErrUnrecognizedCategory", tt.color, err)
			}
			if got != tt.want {
				t.Errorf("Route(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestRoute_Deterministic(t *testing.T) {
	for _, c := range Colors() {
		first, err := Route(c)
		if err != nil {
			t.Fatalf("Route(%v) failed: %v", c, err)
		}
		for i := 0; i < 100; i++ {
			again, err := Route(c)
			if err != nil || again != first {
				t.Fatalf("Route(%v) call %d = %v, %v; want %v", c, i, again, err, first)
			}
		}
	}
}

func TestRoute_RejectionLeavesNoTrace(t *testing.T) {
	if _, err := Route(ObjectColor(99)); err == nil {
		t.Fatal("expected rejection")
	}
	got, err := Route(Black)
	if err != nil || got != BeltA {
		t.Errorf("Route(Black) after rejection = %v, %v; want A", got, err)
	}
}

func TestRoute_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 300)
	for i := 0; i < 100; i++ {
		for _, c := range Colors() {
			wg.Add(1)
			go func(c ObjectColor) {
				defer wg.Done()
				if _, err := Route(c); err != nil {
					errs <- err
				}
			}(c)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Route failed: %v", err)
	}
}

func TestTable_IsBijection(t *testing.T) {
	table := Table()
	if len(table) != len(Colors()) {
		t.Fatalf("len(Table()) = %d, want %d", len(table), len(Colors()))
	}

	seen := map[ConveyorBelt]ObjectColor{}
	for _, row := range table {
		if !row.Belt.Valid() {
			t.Errorf("color %v has no belt", row.Color)
		}
		if prev, dup := seen[row.Belt]; dup {
			t.Errorf("belt %v reached from both %v and %v", row.Belt, prev, row.Color)
		}
		seen[row.Belt] = row.Color
	}
	for _, b := range Belts() {
		if _, ok := seen[b]; !ok {
			t.Errorf("belt %v is unreachable", b)
		}
	}
}

func TestTable_ReturnsCopy(t *testing.T) {
	table := Table()
	table[0].Belt = BeltC
	if got, _ := Route(Black); got != BeltA {
		t.Errorf("mutating Table() result changed routing: Route(Black) = %v", got)
	}
}

func TestSourceOf(t *testing.T) {
	tests := []struct {
		belt    ConveyorBelt
		want    ObjectColor
		wantErr bool
	}{
		{belt: BeltA, want: Black},
		{belt: BeltB, want: Transparent},
		{belt: BeltC, want: Colorful},
		{belt: BeltUnknown, want: ColorUnknown, wantErr: true},
		{belt: ConveyorBelt(7), want: ColorUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.belt.String(), func(t *testing.T) {
			got, err := SourceOf(tt.belt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SourceOf(%v) error = %v, wantErr %v", tt.belt, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SourceOf(%v) = %v, want %v", tt.belt, got, tt.want)
			}
		})
	}
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		label     string
		wantColor ObjectColor
		wantBelt  ConveyorBelt
		wantErr   bool
	}{
		{label: "black", wantColor: Black, wantBelt: BeltA},
		{label: "Transparent", wantColor: Transparent, wantBelt: BeltB},
		{label: "  COLORFUL\n", wantColor: Colorful, wantBelt: BeltC},
		{label: "green", wantErr: true},
		{label: "", wantErr: true},
		{label: "transparent-colorful", wantErr: true},
		{label: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			color, belt, err := RouteLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RouteLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if tt.wantErr {
				var uce *UnrecognizedCategoryError
				if !errors.As(err, &uce) {
					t.Fatalf("error %T is not *UnrecognizedCategoryError", err)
				}
				if uce.Input != tt.label {
					t.Errorf("Input = %q, want %q", uce.Input, tt.label)
				}
				if belt != BeltUnknown {
					t.Errorf("belt = %v on failure, want none", belt)
				}
				return
			}
			if color != tt.wantColor || belt != tt.wantBelt {
				t.Errorf("RouteLabel(%q) = %v, %v; want %v, %v", tt.label, color, belt, tt.wantColor, tt.wantBelt)
			}
		})
	}
}
