package album_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/arcanaland/binder/internal/album"
)

func TestProjectIsDeterministic(t *testing.T) {
	ctrl, sched := newController(t, "a")
	ctrl.ToggleCard(2)
	ctrl.NextPage()
	settle(ctrl, sched)

	s := ctrl.State()
	col := ctrl.Collection()
	first := album.Project(col, s)
	second := album.Project(col, s)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("projection should be referentially transparent")
	}

	first.Front[0].Revealed = true
	first.Flipped[0] = album.Unflipped
	if third := album.Project(col, s); !reflect.DeepEqual(second, third) {
		t.Fatal("projection should not share slices between calls")
	}
}

func TestProjectFrontAndBack(t *testing.T) {
	ctrl, _ := newController(t, "a")
	ctrl.ToggleCard(2)
	v := ctrl.View()

	if v.CollectionID != "a" || v.CollectionName != "Alpha" || v.PageCount != 3 {
		t.Fatalf("unexpected header: %+v", v)
	}
	if len(v.Front) != album.PageCapacity || len(v.Back) != album.PageCapacity {
		t.Fatalf("unexpected page sizes: front %d back %d", len(v.Front), len(v.Back))
	}
	if v.Front[2].Card == nil || v.Front[2].Card.ID != "c2" || !v.Front[2].Revealed {
		t.Fatalf("unexpected slot 2: %+v", v.Front[2])
	}
	if !v.Front[1].Empty || v.Front[1].Revealed {
		t.Fatalf("unexpected slot 1: %+v", v.Front[1])
	}
	if v.Back[0].Global != 6 || v.Back[1].Card == nil || v.Back[1].Card.ID != "c4" {
		t.Fatalf("unexpected back page: %+v", v.Back[:2])
	}
	if v.CanGoPrev || !v.CanGoNext {
		t.Fatalf("unexpected affordances: prev %v next %v", v.CanGoPrev, v.CanGoNext)
	}
}

func TestProjectLastPageHasNoBack(t *testing.T) {
	ctrl, sched := newController(t, "a")
	for i := 0; i < 2; i++ {
		ctrl.NextPage()
		settle(ctrl, sched)
	}
	v := ctrl.View()
	if v.Back != nil {
		t.Fatalf("last page should have no back: %+v", v.Back)
	}
	if !v.CanGoPrev || v.CanGoNext {
		t.Fatalf("unexpected affordances: prev %v next %v", v.CanGoPrev, v.CanGoNext)
	}
	if v.Front[0].Global != 12 || !v.Front[1].Empty {
		t.Fatalf("unexpected last page: %+v", v.Front)
	}
}

func TestProjectWithoutCollection(t *testing.T) {
	v := album.Project(nil, album.State{})
	if v.CollectionID != "" || v.Front != nil || v.CanGoNext || v.CanGoPrev {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.String() != "(no collection)\n" {
		t.Fatalf("unexpected text: %q", v.String())
	}
}

func TestViewString(t *testing.T) {
	ctrl, _ := newController(t, "a")
	ctrl.ToggleCard(2)
	ctrl.NextPage()

	want := strings.Join([]string{
		"Alpha · page 1/3",
		"1:One [Common] | 2:(empty) | 3:Two {Element=Water}",
		"4:(empty) | 5:(empty) | 6:Three [Rare]",
		"pages [UUU] prev:false next:false turning:forward",
		"",
	}, "\n")
	if got := ctrl.View().String(); got != want {
		t.Fatalf("unexpected text:\n%s\nwant:\n%s", got, want)
	}
}
