package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setFlags(t *testing.T, set func()) {
	t.Helper()

	saved := Flags
	t.Cleanup(func() { Flags = saved })

	set()
}

func TestConfigFromFlags(t *testing.T) {
	tests := []struct {
		name string
		set  func()
		want Config
	}{
		{
			name: "none",
			set:  func() {},
			want: Config{},
		},
		{
			name: "plain",
			set: func() {
				Flags.Number = true
				Flags.SqueezeBlank = true
			},
			want: Config{NumberAll: true, SqueezeBlank: true},
		},
		{
			name: "show all",
			set:  func() { Flags.ShowAll = true },
			want: Config{ShowNonprinting: true, ShowEnds: true, ShowTabs: true},
		},
		{
			name: "e",
			set:  func() { Flags.ShowAllButTabs = true },
			want: Config{ShowNonprinting: true, ShowEnds: true},
		},
		{
			name: "t",
			set:  func() { Flags.ShowAllButEnds = true },
			want: Config{ShowNonprinting: true, ShowTabs: true},
		},
		{
			name: "e and t together",
			set: func() {
				Flags.ShowAllButTabs = true
				Flags.ShowAllButEnds = true
				Flags.NumberNonblank = true
			},
			want: Config{NumberNonblank: true, ShowNonprinting: true, ShowEnds: true, ShowTabs: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, func() {
				Flags.Number = false
				Flags.NumberNonblank = false
				Flags.SqueezeBlank = false
				Flags.ShowAll = false
				Flags.ShowAllButTabs = false
				Flags.ShowAllButEnds = false
				Flags.ShowNonprinting = false
				Flags.ShowTabs = false
				Flags.ShowEnds = false

				tt.set()
			})

			assert.Equal(t, tt.want, configFromFlags())
		})
	}
}

func TestConfigNumbers(t *testing.T) {
	assert.False(t, Config{}.numbers(false))

	all := Config{NumberAll: true}
	assert.True(t, all.numbers(false))
	assert.True(t, all.numbers(true))

	nonblank := Config{NumberAll: true, NumberNonblank: true}
	assert.True(t, nonblank.numbers(false))
	assert.False(t, nonblank.numbers(true))
}

func TestConfigEscaping(t *testing.T) {
	assert.False(t, Config{ShowEnds: true, NumberAll: true}.escaping())
	assert.True(t, Config{ShowNonprinting: true}.escaping())
	assert.True(t, Config{ShowTabs: true}.escaping())
}
