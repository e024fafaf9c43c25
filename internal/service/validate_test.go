package service

import "testing"

func TestValidateGroupData(t *testing.T) {
	tests := []struct {
		name    string
		data    GroupData
		wantErr string
	}{
		{"valid", GroupData{Name: "family", MaxProfiles: 10}, ""},
		{"missing name", GroupData{MaxProfiles: 10}, "Invalid group name"},
		{"zero max_profiles", GroupData{Name: "family"}, "Invalid max_profiles"},
		{"negative max_profiles", GroupData{Name: "family", MaxProfiles: -1}, "Invalid max_profiles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGroupData(&tt.data)
			checkValidationResult(t, err, tt.wantErr)
		})
	}
}

func TestValidateProfileData(t *testing.T) {
	tests := []struct {
		name    string
		data    ProfileData
		wantErr string
	}{
		{"valid", ProfileData{Name: "alice", GroupID: "g1"}, ""},
		{"missing name", ProfileData{GroupID: "g1"}, "Invalid profile name"},
		{"missing group_id", ProfileData{Name: "alice"}, "Invalid group_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileData(&tt.data)
			checkValidationResult(t, err, tt.wantErr)
		})
	}
}

func TestValidateChatData(t *testing.T) {
	if err := ValidateChatData(&ChatData{Name: "plans"}); err != nil {
		t.Errorf("valid chat data rejected: %v", err)
	}
	err := ValidateChatData(&ChatData{})
	checkValidationResult(t, err, "Invalid chat name")
}

func checkValidationResult(t *testing.T, err error, wantMsg string) {
	t.Helper()
	if wantMsg == "" {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected error %q, got nil", wantMsg)
	}
	if !IsValidation(err) {
		t.Errorf("error %v is not a ValidationError", err)
	}
	if err.Error() != wantMsg {
		t.Errorf("error message = %q, want %q", err.Error(), wantMsg)
	}
}
