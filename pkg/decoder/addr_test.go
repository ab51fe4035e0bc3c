package decoder

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/google/go-cmp/cmp"
)

var addrComparer = cmp.Comparer(func(a, b netip.Addr) bool { return a == b })

func TestReadIPv4(t *testing.T) {
	d := From([]byte{192, 168, 1, 1})

	for _, length := range []int{0, 3, 5, 8} {
		if _, err := d.ReadIPv4(length); !errors.Is(err, ErrNotEnoughBytes) {
			t.Errorf("length %d: expected not enough bytes got %v", length, err)
		}
	}
	if d.Position() != 0 {
		t.Errorf("expected position 0 got %d", d.Position())
	}

	addr, err := d.ReadIPv4(4)
	if err != nil {
		t.Fatal(err)
	}
	if addr != netip.MustParseAddr("192.168.1.1") {
		t.Errorf("expected 192.168.1.1 got %v", addr)
	}

	if _, err := d.ReadIPv4(4); !errors.Is(err, ErrEndOfBuffer) {
		t.Errorf("expected end of buffer got %v", err)
	}
}

func TestReadIPv4s(t *testing.T) {
	gofakeit.Seed(0)
	var want []netip.Addr
	var buf []byte
	for i := 0; i < 3; i++ {
		addr := netip.MustParseAddr(gofakeit.IPv4Address())
		want = append(want, addr)
		buf = append(buf, addr.AsSlice()...)
	}

	if _, err := From(buf).ReadIPv4s(10); !errors.Is(err, ErrNotEnoughBytes) {
		t.Errorf("expected not enough bytes got %v", err)
	}
	if _, err := From(buf).ReadIPv4s(-4); !errors.Is(err, ErrNotEnoughBytes) {
		t.Errorf("expected not enough bytes got %v", err)
	}

	d := From(buf)
	got, err := d.ReadIPv4s(12)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, addrComparer); diff != "" {
		t.Errorf("addresses mismatch (-want +got):\n%s", diff)
	}
	if d.Len() != 0 {
		t.Errorf("expected all bytes consumed, %d left", d.Len())
	}

	got, err = From(nil).ReadIPv4s(0)
	if err != nil || len(got) != 0 {
		t.Errorf("expected empty list got %v (%v)", got, err)
	}

	if _, err := From(buf).ReadIPv4s(16); !errors.Is(err, ErrEndOfBuffer) {
		t.Errorf("expected end of buffer got %v", err)
	}
}

func TestReadIPv6s(t *testing.T) {
	gofakeit.Seed(0)
	var want []netip.Addr
	var buf []byte
	for i := 0; i < 2; i++ {
		addr := netip.MustParseAddr(gofakeit.IPv6Address())
		want = append(want, addr)
		buf = append(buf, addr.AsSlice()...)
	}

	d := From(buf)
	if _, err := d.ReadIPv6s(20); !errors.Is(err, ErrNotEnoughBytes) {
		t.Errorf("expected not enough bytes got %v", err)
	}

	got, err := d.ReadIPv6s(32)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, addrComparer); diff != "" {
		t.Errorf("addresses mismatch (-want +got):\n%s", diff)
	}
	for _, addr := range got {
		if !addr.Is6() {
			t.Errorf("expected IPv6 address got %v", addr)
		}
	}
}

func TestReadPairIPv4s(t *testing.T) {
	buf := []byte{
		10, 0, 0, 0, 10, 0, 0, 1,
		192, 168, 0, 0, 192, 168, 0, 254,
	}

	if _, err := From(buf).ReadPairIPv4s(12); !errors.Is(err, ErrNotEnoughBytes) {
		t.Errorf("expected not enough bytes got %v", err)
	}

	got, err := From(buf).ReadPairIPv4s(16)
	if err != nil {
		t.Fatal(err)
	}
	want := []IPv4Pair{
		{netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("10.0.0.1")},
		{netip.MustParseAddr("192.168.0.0"), netip.MustParseAddr("192.168.0.254")},
	}
	if diff := cmp.Diff(want, got, addrComparer); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}
