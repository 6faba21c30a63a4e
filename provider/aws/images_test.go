package aws

import "testing"

func TestAMIParameterName(t *testing.T) {
	tests := []struct {
		name    string
		version string
		arch    string
		want    string
		wantErr bool
	}{
		{
			name:    "Default",
			version: "1.14",
			want:    "/aws/service/eks/optimized-ami/1.14/amazon-linux-2/recommended/image_id",
		},
		{
			name:    "X8664",
			version: "1.14",
			arch:    "x86_64",
			want:    "/aws/service/eks/optimized-ami/1.14/amazon-linux-2/recommended/image_id",
		},
		{
			name:    "AMD64",
			version: "1.13",
			arch:    "amd64",
			want:    "/aws/service/eks/optimized-ami/1.13/amazon-linux-2/recommended/image_id",
		},
		{
			name:    "ARM64",
			version: "1.14",
			arch:    "arm64",
			want:    "/aws/service/eks/optimized-ami/1.14/amazon-linux-2-arm64/recommended/image_id",
		},
		{
			name:    "NoVersion",
			arch:    "x86_64",
			wantErr: true,
		},
		{
			name:    "UnsupportedArch",
			version: "1.14",
			arch:    "s390x",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := amiParameterName(tt.version, tt.arch)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("amiParameterName() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("amiParameterName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("amiParameterName() = %q, want %q", got, tt.want)
			}
		})
	}
}
