package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want cliFlags
	}{
		{
			name: "defaults",
			args: []string{"blogen"},
			want: cliFlags{addr: ":9999"},
		},
		{
			name: "build flags",
			args: []string{"blogen", "--config", "site.yaml", "--out", "public", "--drafts", "-v"},
			want: cliFlags{config: "site.yaml", out: "public", drafts: true, verbose: true, addr: ":9999"},
		},
		{
			name: "serve and watch",
			args: []string{"blogen", "--serve", "--watch", "--addr", ":8080"},
			want: cliFlags{serve: true, watch: true, addr: ":8080"},
		},
		{
			name: "short flags",
			args: []string{"blogen", "-c", "site", "-o", "dist"},
			want: cliFlags{config: "site", out: "dist", addr: ":9999"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"blogen", "--nope"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
