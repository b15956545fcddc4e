package idcase

import "testing"

func TestStyleByName(t *testing.T) {
	expected := []string{
		"snake", "constant", "camel", "pascal", "kebab", "space",
		"chain", "path", "upper", "lower", "reverse",
	}
	for _, name := range expected {
		style, ok := StyleByName(name)
		if !ok {
			t.Fatalf("expected style %q to be available", name)
		}
		if style.String() != name {
			t.Fatalf("style %q reports name %q", name, style.String())
		}
		if style.Describe() == "" {
			t.Fatalf("style %q has no description", name)
		}
	}
	if len(AvailableStyles()) != len(expected) {
		t.Fatalf("AvailableStyles()=%q", AvailableStyles())
	}
	if s, ok := StyleByName("  KEBAB "); !ok || s != StyleKebab {
		t.Fatalf("lookup should be case-insensitive")
	}
	if s, ok := StyleByName(""); !ok || s != StyleSnake {
		t.Fatalf("empty name should select snake")
	}
	if _, ok := StyleByName("sponge"); ok {
		t.Fatalf("unexpected style")
	}
}

func TestConvertStyles(t *testing.T) {
	settings := Settings{UpperContinuous: true, SplitNumber: true}
	in := "myHTTPServer2Go"
	cases := map[Style]string{
		StyleSnake:    "my_http_server_2_go",
		StyleConstant: "MY_HTTP_SERVER_2_GO",
		StyleCamel:    "myHttpServer2Go",
		StylePascal:   "MyHTTPServer2Go",
		StyleKebab:    "my-http-server-2-go",
		StyleSpace:    "my http server 2 go",
		StyleChain:    "my.http.server.2.go",
		StylePath:     "my/http/server/2/go",
		StyleUpper:    "MYHTTPSERVER2GO",
		StyleLower:    "myhttpserver2go",
		StyleReverse:  "oG2revreSPTTHym",
	}
	for style, want := range cases {
		if got := Convert(in, style, settings); got != want {
			t.Fatalf("%s: got %q want %q", style, got, want)
		}
	}
}

func TestConvertHonorsSettings(t *testing.T) {
	in := "myHTTPServer2Go"
	if got := Convert(in, StyleSnake, Settings{}); got != "my_httpserver2go" {
		t.Fatalf("zero settings got %q", got)
	}
	if got := Convert(in, StyleCamel, Settings{CamelUpper: true, UpperContinuous: true}); got != "MyHttpServer2go" {
		t.Fatalf("camel upper got %q", got)
	}
}

func TestConvertWholeTextUsesFullCasing(t *testing.T) {
	if got := Convert("straße", StyleUpper, Settings{}); got != "STRASSE" {
		t.Fatalf("got %q", got)
	}
	if got := Convert("Ünïcödé", StyleReverse, Settings{}); got != "édöcïnÜ" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertUnknownStyleReturnsInput(t *testing.T) {
	if got := ConvertWith("fooBar", Style(200), nil, false); got != "fooBar" {
		t.Fatalf("got %q", got)
	}
}
