package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocal IsLocalAddr,
	) {
		for _, addr := range []string{"127.0.0.1:10000", "localhost:80", "10.0.0.1", "[::1]:8080"} {
			if !isLocal(addr) {
				t.Fatalf("%s should be local", addr)
			}
		}
		for _, addr := range []string{"8.8.8.8:53", "example.com:443"} {
			if isLocal(addr) {
				t.Fatalf("%s should not be local", addr)
			}
		}
	})
}

func TestProxyAddrInTests(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestProxyDialer(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getDialer GetProxyDialer,
	) {
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}
