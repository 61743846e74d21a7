package ttf

import (
	"errors"
	"testing"

	"github.com/gogpu/ttf/rasterizer"
)

func TestFontFaceLoad(t *testing.T) {
	owner := newBitmapFont()
	face := newFontFace(owner.config)
	var counter disposeCounter
	face.Prepare([]byte("ab"), counter.dispose)

	if face.Loaded() || face.ProvidesGlyph('a') {
		t.Fatal("prepared face must not have a handle yet")
	}

	if err := face.Load(13, owner); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !face.ProvidesGlyph('a') || face.ProvidesGlyph('c') {
		t.Error("unexpected glyph coverage")
	}
	if face.Size() != 13 || face.Owner() != owner {
		t.Errorf("Size() = %d, Owner() = %p", face.Size(), face.Owner())
	}
	if got, ok := face.Handle().Owner().(*Font); !ok || got != owner {
		t.Error("handle must be tagged with the owning Font")
	}
	if face.Name() != "Bitmap ab" {
		t.Errorf("Name() = %q", face.Name())
	}

	old := face.Handle()
	if err := face.Load(20, owner); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !old.Closed() {
		t.Error("reload must close the previous handle")
	}
	if face.Handle().Size() != 20 {
		t.Errorf("handle size = %d, want 20", face.Handle().Size())
	}
	if counter.calls != 0 {
		t.Errorf("reload must not dispose the buffer, %d calls", counter.calls)
	}
}

func TestFontFaceFailedReloadKeepsHandle(t *testing.T) {
	owner := newBitmapFont()
	face := newFontFace(owner.config)
	face.Prepare([]byte("ab|20"), nil)
	if err := face.Load(13, owner); err != nil {
		t.Fatal(err)
	}
	handle := face.Handle()

	for _, size := range []int{20, 0} {
		err := face.Load(size, owner)
		var loadErr *FaceLoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("Load(%d) error = %v, want *FaceLoadError", size, err)
		}
		if loadErr.Size != size {
			t.Errorf("FaceLoadError.Size = %d, want %d", loadErr.Size, size)
		}
		if face.Handle() != handle || handle.Closed() || face.Size() != 13 {
			t.Errorf("failed Load(%d) must keep the previous handle", size)
		}
	}

	if err := face.Load(0, owner); !errors.Is(err, rasterizer.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize in chain, got %v", err)
	}
}

func TestFontFaceLoadErrors(t *testing.T) {
	var face FontFace
	if err := face.Load(13, nil); !errors.Is(err, ErrFaceNotPrepared) {
		t.Errorf("Load without buffer = %v, want ErrFaceNotPrepared", err)
	}

	var counter disposeCounter
	face.Prepare([]byte("not a font"), counter.dispose)
	err := face.Load(13, nil)
	var loadErr *FaceLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load of garbage = %v, want *FaceLoadError", err)
	}
	if face.Loaded() {
		t.Error("failed first Load must leave the face without a handle")
	}
	if counter.calls != 0 {
		t.Error("failed Load must not dispose the buffer")
	}
}

func TestFontFaceDisposeAll(t *testing.T) {
	face := newFontFace(newBitmapFont().config)
	var counter disposeCounter
	buf := []byte("ab")
	face.Prepare(buf, counter.dispose)
	if err := face.Load(13, nil); err != nil {
		t.Fatal(err)
	}
	handle := face.Handle()

	face.DisposeAll()
	face.DisposeAll()

	if counter.calls != 1 {
		t.Fatalf("dispose called %d times, want 1", counter.calls)
	}
	if &counter.bufs[0][0] != &buf[0] {
		t.Error("dispose must receive the registered buffer")
	}
	if !handle.Closed() || face.Loaded() || face.ProvidesGlyph('a') {
		t.Error("DisposeAll must close and clear the handle")
	}
	if err := face.Load(13, nil); !errors.Is(err, ErrFaceNotPrepared) {
		t.Errorf("Load after DisposeAll = %v, want ErrFaceNotPrepared", err)
	}
}

func TestFontFacePrepareReplacesBuffer(t *testing.T) {
	face := newFontFace(newBitmapFont().config)
	var first, second disposeCounter
	face.Prepare([]byte("ab"), first.dispose)
	face.Prepare([]byte("cd"), second.dispose)

	if first.calls != 1 {
		t.Errorf("replaced buffer disposed %d times, want 1", first.calls)
	}
	if second.calls != 0 {
		t.Errorf("new buffer disposed %d times, want 0", second.calls)
	}
}
