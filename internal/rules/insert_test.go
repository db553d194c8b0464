package rules

import "testing"

func TestInsert(t *testing.T) {
	t.Parallel()

	prepend := Config{AutoPrepend: true}
	append_ := Config{AutoAppend: true}

	tests := []struct {
		name        string
		cfg         Config
		branch      string
		msg         string
		want        string
		wantChanged bool
	}{
		{
			name:        "prepend adds reference",
			cfg:         prepend,
			branch:      "31-thing",
			msg:         "fix the thing #31 properly",
			want:        "#31 fix the thing #31 properly",
			wantChanged: true,
		},
		{
			name:   "prepend is a no-op when already prefixed",
			cfg:    prepend,
			branch: "31-thing",
			msg:    "#31 fix the thing",
			want:   "#31 fix the thing",
		},
		{
			name:   "prepend no-op when prefix ends the first line",
			cfg:    prepend,
			branch: "31-thing",
			msg:    "#31\n\nbody",
			want:   "#31\n\nbody",
		},
		{
			name:        "append adds reference before trailing newline",
			cfg:         append_,
			branch:      "31-thing",
			msg:         "fix #31 the thing\n",
			want:        "fix #31 the thing #31\n",
			wantChanged: true,
		},
		{
			name:   "append is a no-op when already suffixed",
			cfg:    append_,
			branch: "31-thing",
			msg:    "fix the thing #31\n",
			want:   "fix the thing #31\n",
		},
		{
			name:   "no auto mode leaves message alone",
			cfg:    Config{},
			branch: "31-thing",
			msg:    "anything",
			want:   "anything",
		},
		{
			name:   "no branch issue leaves message alone",
			cfg:    prepend,
			branch: "main",
			msg:    "#31 msg",
			want:   "#31 msg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, changed := Insert(tt.cfg, tt.branch, tt.msg)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("Insert = %q, %v; want %q, %v", got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestInsertIdempotent(t *testing.T) {
	t.Parallel()

	for _, cfg := range []Config{{AutoPrepend: true}, {AutoAppend: true}} {
		msg := "fix #42 in the login flow\n"
		once, _ := Insert(cfg, "42-login", msg)
		twice, changed := Insert(cfg, "42-login", once)
		if changed || twice != once {
			t.Errorf("Insert not idempotent: once = %q, twice = %q (changed=%v)", once, twice, changed)
		}
	}
}
