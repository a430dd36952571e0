// Package audio provides the MP3 maintenance tools that ship alongside
// the artist-list generator.
//
// # Health Checking
//
// HealthChecker probes MP3 files with ffmpeg to find corrupt ones:
//
//	checker := audio.NewHealthChecker("ffmpeg", 8)
//	results, err := checker.Check(ctx, "/music")
//
// # Tag Stripping
//
// TagStripper removes ID3v1 and ID3v2 metadata from MP3 files:
//
//	stripper := &audio.TagStripper{}
//	res, err := stripper.StripFile("/music/song.mp3")
//
// # FLAC Conversion
//
// FlacConverter re-encodes FLAC files to 320kbps MP3:
//
//	conv := &audio.FlacConverter{}
//	results, err := conv.Convert(ctx, "/music", nil)
//
// The health checker and converter shell out to ffmpeg; the tag
// stripper works directly on the files.
package audio
