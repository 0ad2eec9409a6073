package markupconv

import "testing"

func testData() AnnotatedImages {
	return AnnotatedImages{
		{
			Image: ImageInfo{FileName: "a.png"},
			Boxes: []Box{{Coords: [4]int{0, 0, 4, 2}, Label: "cat"}, {Label: "dog"}},
		},
		{Image: ImageInfo{FileName: "b.png"}},
		{
			Image: ImageInfo{FileName: "c.png"},
			Boxes: []Box{{Label: "ant"}, {Label: "cat"}},
		},
	}
}

func TestLabels(t *testing.T) {
	got := testData().Labels()
	want := []string{"ant", "cat", "dog"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}

	if n := testData().NumBoxes(); n != 4 {
		t.Errorf("expected 4 boxes, got %d", n)
	}
}

func TestBoxSize(t *testing.T) {
	b := Box{Coords: [4]int{2, 3, 12, 8}}
	if b.Width() != 10 || b.Height() != 5 {
		t.Errorf("unexpected size %dx%d", b.Width(), b.Height())
	}
}

func TestMapLabels(t *testing.T) {
	data := testData()
	if err := data.MapLabels([]string{"cat=lion", "lion=tiger", "d=D"}); err != nil {
		t.Fatalf("MapLabels failed: %v", err)
	}

	want := [][]string{{"tiger", "Dog"}, nil, {"ant", "tiger"}}
	for i, d := range data {
		for j, b := range d.Boxes {
			if b.Label != want[i][j] {
				t.Errorf("image %d box %d: expected %q, got %q", i, j, want[i][j], b.Label)
			}
		}
	}

	if err := data.MapLabels([]string{"a=b=c"}); err == nil {
		t.Error("expected an error for an invalid mapping")
	}
}
