package handlers

import "net/http"

// Root answers the health probe with a plaintext greeting.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("AssetVerse server is running"))
}
