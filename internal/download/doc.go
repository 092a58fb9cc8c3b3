package download

// Package download implements the extraction and download adapters built on
// top of yt-dlp (via github.com/lrstanley/go-ytdlp). It turns engine metadata
// into a sorted quality list, builds the per-quality format selector, and
// relays engine progress callbacks to the caller.
