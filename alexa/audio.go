package alexa

import (
	"context"
	"fmt"
	"time"

	"github.com/voxkit/voxkit/core"
)

// PlayBehavior enumerates how a new audio stream interacts with the current
// playback queue.
type PlayBehavior string

const (
	// PlayBehaviorReplaceAll replaces the current stream and queue. Default.
	PlayBehaviorReplaceAll PlayBehavior = "REPLACE_ALL"
	// PlayBehaviorEnqueue appends the stream to the current queue.
	PlayBehaviorEnqueue PlayBehavior = "ENQUEUE"
	// PlayBehaviorReplaceEnqueued replaces queued streams, keeping the
	// current one.
	PlayBehaviorReplaceEnqueued PlayBehavior = "REPLACE_ENQUEUED"
)

// Valid reports whether the value belongs to the recognized set.
func (b PlayBehavior) Valid() bool {
	switch b {
	case PlayBehaviorReplaceAll, PlayBehaviorEnqueue, PlayBehaviorReplaceEnqueued:
		return true
	}
	return false
}

// PlayAudioDirective appends an AudioPlayer.Play entry. Audio playback and
// video launch are mutually exclusive within one reply; multiple play
// entries are allowed (queueing).
type PlayAudioDirective struct {
	url      string
	token    string
	offset   time.Duration
	behavior PlayBehavior
}

// NewPlayAudio is the factory for the alexa.playAudio key. Parameters:
// "url" (required), "token", "offset" (duration, milliseconds number, or
// duration string), "behavior" (defaults to REPLACE_ALL).
func NewPlayAudio(desc core.Descriptor) (core.Directive, error) {
	url := desc.StringParam("url")
	if url == "" {
		return nil, core.NewUsageError(Platform, KeyPlayAudio, "playAudio requires a url parameter")
	}
	offset, err := offsetOf(desc)
	if err != nil {
		return nil, err
	}
	behavior := PlayBehavior(desc.StringParam("behavior"))
	if behavior == "" {
		behavior = PlayBehaviorReplaceAll
	}
	if !behavior.Valid() {
		return nil, core.NewUsageError(Platform, KeyPlayAudio, "unrecognized play behavior "+string(behavior))
	}
	return &PlayAudioDirective{
		url:      url,
		token:    desc.StringParam("token"),
		offset:   offset,
		behavior: behavior,
	}, nil
}

func offsetOf(desc core.Descriptor) (time.Duration, error) {
	v, ok := desc.Param("offset")
	if !ok || v == nil {
		return 0, nil
	}
	switch o := v.(type) {
	case time.Duration:
		return o, nil
	case int:
		return time.Duration(o) * time.Millisecond, nil
	case int64:
		return time.Duration(o) * time.Millisecond, nil
	case float64:
		return time.Duration(o) * time.Millisecond, nil
	case string:
		d, err := time.ParseDuration(o)
		if err != nil {
			return 0, core.NewUsageError(Platform, KeyPlayAudio, "invalid offset "+o)
		}
		return d, nil
	default:
		return 0, core.NewUsageError(Platform, KeyPlayAudio, fmt.Sprintf("invalid offset type %T", v))
	}
}

// Apply enforces the audio/video conflict and appends the play entry.
func (d *PlayAudioDirective) Apply(_ context.Context, reply core.Reply, _ core.Event, _ *core.Transition) error {
	r, err := replyOf(reply, KeyPlayAudio)
	if err != nil {
		return err
	}
	if r.HasDirective(core.CategoryVideo) {
		return core.NewExclusivityError(Platform, KeyPlayAudio, "audio playback conflicts with a video launch in this reply")
	}
	r.append(AudioPlayEntry{
		Type:         "AudioPlayer.Play",
		PlayBehavior: string(d.behavior),
		AudioItem: AudioItem{Stream: Stream{
			URL:                  d.url,
			Token:                d.token,
			OffsetInMilliseconds: d.offset.Milliseconds(),
		}},
	})
	return nil
}

// NewStopAudio is the factory for the alexa.stopAudio key. Stop takes no
// inputs and appends unconditionally: calling it twice appends two
// independent entries and never errors.
func NewStopAudio(core.Descriptor) (core.Directive, error) {
	return core.DirectiveFunc(func(_ context.Context, reply core.Reply, _ core.Event, _ *core.Transition) error {
		r, err := replyOf(reply, KeyStopAudio)
		if err != nil {
			return err
		}
		r.append(AudioStopEntry{Type: "AudioPlayer.Stop"})
		return nil
	}), nil
}

// LaunchVideoDirective appends a VideoApp.Launch entry. Devices without
// video support are a silent no-op; replies that already carry audio
// playback fail the turn (mutual exclusion with AudioPlayer.Play).
type LaunchVideoDirective struct {
	url      string
	title    string
	subtitle string
}

// NewLaunchVideo is the factory for the alexa.launchVideo key. Parameters:
// "url" (required), "title", "subtitle".
func NewLaunchVideo(desc core.Descriptor) (core.Directive, error) {
	url := desc.StringParam("url")
	if url == "" {
		return nil, core.NewUsageError(Platform, KeyLaunchVideo, "launchVideo requires a url parameter")
	}
	return &LaunchVideoDirective{
		url:      url,
		title:    desc.StringParam("title"),
		subtitle: desc.StringParam("subtitle"),
	}, nil
}

// Apply gates on the video capability, enforces the audio/video conflict and
// appends the launch entry.
func (d *LaunchVideoDirective) Apply(_ context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
	if !event.Capabilities().Has(core.CapabilityVideo) {
		return nil
	}
	r, err := replyOf(reply, KeyLaunchVideo)
	if err != nil {
		return err
	}
	if r.HasDirective(core.CategoryAudioPlay) {
		return core.NewExclusivityError(Platform, KeyLaunchVideo, "video launch conflicts with audio playback in this reply")
	}
	item := VideoItem{Source: d.url}
	if d.title != "" || d.subtitle != "" {
		item.Metadata = &VideoMetadata{Title: d.title, Subtitle: d.subtitle}
	}
	r.append(VideoLaunchEntry{Type: "VideoApp.Launch", VideoItem: item})
	return nil
}
