package model

import "testing"

func TestFormState_CanFetch(t *testing.T) {
	tests := []struct {
		state    FormState
		expected bool
	}{
		{FormStateIdle, true},
		{FormStateFetching, false},
		{FormStateReady, true},
		{FormStateDownloading, false},
	}

	for _, test := range tests {
		result := test.state.CanFetch()
		if result != test.expected {
			t.Errorf("FormState(%s).CanFetch() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestFormState_CanDownload(t *testing.T) {
	tests := []struct {
		state    FormState
		expected bool
	}{
		{FormStateIdle, false},
		{FormStateFetching, false},
		{FormStateReady, true},
		{FormStateDownloading, false},
	}

	for _, test := range tests {
		result := test.state.CanDownload()
		if result != test.expected {
			t.Errorf("FormState(%s).CanDownload() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestFormState_InputsLocked(t *testing.T) {
	if FormStateIdle.InputsLocked() || FormStateReady.InputsLocked() {
		t.Error("Idle and Ready should not lock inputs")
	}
	if !FormStateFetching.InputsLocked() || !FormStateDownloading.InputsLocked() {
		t.Error("Fetching and Downloading should lock inputs")
	}
}

func TestFormState_Transition(t *testing.T) {
	tests := []struct {
		from    FormState
		event   FormEvent
		to      FormState
		wantErr bool
	}{
		{FormStateIdle, EventFetch, FormStateFetching, false},
		{FormStateReady, EventFetch, FormStateFetching, false},
		{FormStateFetching, EventFetchSucceeded, FormStateReady, false},
		{FormStateFetching, EventFetchFailed, FormStateIdle, false},
		{FormStateReady, EventDownload, FormStateDownloading, false},
		{FormStateDownloading, EventDownloadDone, FormStateIdle, false},
		{FormStateDownloading, EventDownloadAborted, FormStateIdle, false},

		{FormStateIdle, EventDownload, FormStateIdle, true},
		{FormStateFetching, EventFetch, FormStateFetching, true},
		{FormStateFetching, EventDownload, FormStateFetching, true},
		{FormStateDownloading, EventFetch, FormStateDownloading, true},
		{FormStateDownloading, EventDownload, FormStateDownloading, true},
		{FormStateIdle, EventDownloadDone, FormStateIdle, true},
	}

	for _, test := range tests {
		got, err := test.from.Transition(test.event)
		if (err != nil) != test.wantErr {
			t.Errorf("%s --%s--> error = %v, wantErr %v", test.from, test.event, err, test.wantErr)
			continue
		}
		if got != test.to {
			t.Errorf("%s --%s--> %s, expected %s", test.from, test.event, got, test.to)
		}
	}
}

func TestFormState_String(t *testing.T) {
	status := FormStateDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("FormState.String() = %s, expected %s", result, expected)
	}
}
