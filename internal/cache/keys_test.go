package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "session",
			objectType:  "record",
			identifier:  "01HZX3YJ5Q8W9K2M4N6P7R8S9T",
			expectedKey: "careercompass:session:record:01HZX3YJ5Q8W9K2M4N6P7R8S9T",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "catalog",
			objectType:  "questions",
			identifier:  "engineering",
			paramsKey:   []string{},
			expectedKey: "careercompass:catalog:questions:engineering",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "catalog",
			objectType:  "resources",
			identifier:  "science",
			paramsKey:   []string{"exams", "v2"},
			expectedKey: "careercompass:catalog:resources:science:exams_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("abc"); got != "careercompass:session:record:abc" {
		t.Errorf("SessionKey() = %v", got)
	}
}
