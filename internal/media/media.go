package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// Ensure resolves the ffmpeg and ffprobe binaries once per process:
// KARASUB_FFMPEG_PATH / KARASUB_FFPROBE_PATH override, then PATH lookup.
func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		ensurePath, ensureErr = ensure()
	})
	return ensurePath, ensureErr
}

func ensure() (BinaryPaths, error) {
	ffmpegPath := os.Getenv("KARASUB_FFMPEG_PATH")
	ffprobePath := os.Getenv("KARASUB_FFPROBE_PATH")

	if ffmpegPath == "" {
		found, err := exec.LookPath("ffmpeg")
		if err != nil {
			return BinaryPaths{}, fmt.Errorf("ffmpeg not found: install it or set KARASUB_FFMPEG_PATH")
		}
		ffmpegPath = found
	}
	if ffprobePath == "" {
		found, err := exec.LookPath("ffprobe")
		if err != nil {
			return BinaryPaths{}, fmt.Errorf("ffprobe not found: install it or set KARASUB_FFPROBE_PATH")
		}
		ffprobePath = found
	}

	return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
}

// JSON output from ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		Index     int    `json:"index"`
		CodecType string `json:"codec_type"`
		Duration  string `json:"duration"`
	} `json:"streams"`
}

func probe(filePath string, args ...string) (*ffprobeOutput, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}

	paths, err := Ensure()
	if err != nil {
		return nil, err
	}

	cmdArgs := append([]string{"-v", "quiet", "-print_format", "json"}, args...)
	cmdArgs = append(cmdArgs, filePath)
	cmd := exec.Command(paths.FFprobe, cmdArgs...)

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &parsed, nil
}

// duration of an audio/video file
func GetDuration(filePath string) (time.Duration, error) {
	parsed, err := probe(filePath, "-show_format")
	if err != nil {
		return 0, err
	}
	seconds, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// BestAudioStream picks the longest audio stream of a file, for inputs
// where commentary or secondary tracks precede the main one. Returns -1
// when the file has no audio.
func BestAudioStream(filePath string) (int, error) {
	parsed, err := probe(filePath, "-show_streams")
	if err != nil {
		return -1, err
	}

	best := -1
	bestDur := -1.0
	for _, s := range parsed.Streams {
		if s.CodecType != "audio" {
			continue
		}
		dur, err := strconv.ParseFloat(s.Duration, 64)
		if err != nil {
			dur = 0
		}
		if dur > bestDur {
			best = s.Index
			bestDur = dur
		}
	}
	return best, nil
}

// holds options for audio extraction
type ExtractOptions struct {
	SampleRate  int    // Hz
	Channels    int    // 1 = mono
	StreamIndex int    // audio stream to take, -1 for default
	Filter      string // optional -af filter chain
}

func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		SampleRate:  16000,
		Channels:    1,
		StreamIndex: -1,
	}
}

// ExtractWAV pulls a PCM wav out of any media file, ready for speech
// recognition tooling.
func ExtractWAV(ctx context.Context, inputPath, outputPath string, opts ExtractOptions) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	paths, err := Ensure()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"vn":     "",
		"acodec": "pcm_s16le",
		"ar":     opts.SampleRate,
		"ac":     opts.Channels,
		"y":      "",
	}
	if opts.StreamIndex >= 0 {
		kwargs["map"] = fmt.Sprintf("0:%d", opts.StreamIndex)
	}
	if opts.Filter != "" {
		kwargs["af"] = opts.Filter
	}

	err = ffmpeg.Input(inputPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(paths.FFmpeg).
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}
	return nil
}

// holds options for burning subtitles into video
type BurnOptions struct {
	CRF             int    // x264 quality, lower is better
	Preset          string // x264 speed preset
	Width           int    // canvas width for audio-only inputs
	Height          int    // canvas height for audio-only inputs
	AudioBackground string // canvas color for audio-only inputs, 6-hex RGB
	AudioFPS        int    // canvas frame rate for audio-only inputs
}

func DefaultBurnOptions() BurnOptions {
	return BurnOptions{
		CRF:             18,
		Preset:          "medium",
		Width:           1920,
		Height:          1080,
		AudioBackground: "000000",
		AudioFPS:        30,
	}
}

// BurnSubtitles renders an ASS file into the video frames. Audio-only
// inputs get a solid color canvas sized to the target resolution. The
// audio track is copied when possible and re-encoded to AAC when the
// container rejects a copy.
func BurnSubtitles(ctx context.Context, inputPath, assPath, outputPath string, opts BurnOptions) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if _, err := os.Stat(assPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", assPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	paths, err := Ensure()
	if err != nil {
		return err
	}

	filter := "ass=" + escapeFilterPath(assPath)

	build := func(audioCodec string) *ffmpeg.Stream {
		kwargs := ffmpeg.KwArgs{
			"vf":     filter,
			"vcodec": "libx264",
			"crf":    opts.CRF,
			"preset": opts.Preset,
			"acodec": audioCodec,
			"y":      "",
		}
		if IsAudioOnly(inputPath) {
			canvas := fmt.Sprintf("color=c=0x%s:s=%dx%d:r=%d",
				opts.AudioBackground, opts.Width, opts.Height, opts.AudioFPS)
			kwargs["shortest"] = ""
			return ffmpeg.Output(
				[]*ffmpeg.Stream{
					ffmpeg.Input(canvas, ffmpeg.KwArgs{"f": "lavfi"}),
					ffmpeg.Input(inputPath),
				},
				outputPath, kwargs,
			)
		}
		return ffmpeg.Input(inputPath).Output(outputPath, kwargs)
	}

	err = build("copy").
		OverWriteOutput().
		SetFfmpegPath(paths.FFmpeg).
		Run()
	if err != nil {
		// some containers cannot take the source audio as-is
		err = build("aac").
			OverWriteOutput().
			SetFfmpegPath(paths.FFmpeg).
			Run()
	}
	if err != nil {
		return fmt.Errorf("ffmpeg burn failed: %w", err)
	}
	return nil
}

// escapeFilterPath quotes a path for use inside an ffmpeg filter
// expression, where colons and backslashes are syntax.
func escapeFilterPath(path string) string {
	r := strings.NewReplacer(`\`, `\\`, ":", `\:`, "'", `\'`)
	return "'" + r.Replace(path) + "'"
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".3gp":  true,
}

var audioExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".aac":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".wma":  true,
	".aiff": true,
}

func IsVideoFile(path string) bool {
	return videoExts[strings.ToLower(filepath.Ext(path))]
}

func IsAudioOnly(path string) bool {
	return audioExts[strings.ToLower(filepath.Ext(path))]
}

func IsMediaFile(path string) bool {
	return IsVideoFile(path) || IsAudioOnly(path)
}
