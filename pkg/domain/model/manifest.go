package model

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultOutputDir is where all built-in manifests write their assets
	DefaultOutputDir = "backer-app/public"

	// DefaultManifestName is used when no manifest is selected
	DefaultManifestName = "home-v2"
)

var builtinManifests = map[string][]DownloadTask{
	"home-v2": {
		{
			Label:    "HTML",
			URL:      "https://contribution.usercontent.google.com/download?c=CgthaWRhX2NvZGVmeBJ7Eh1hcHBfY29tcGFuaW9uX2dlbmVyYXRlZF9maWxlcxpaCiVodG1sXzEwNTIxY2VhN2I5MjQxMWU4MTg0Y2ZmZWMzNjQ3ZDIwEgsSBxCcwpuNqRUYAZIBIwoKcHJvamVjdF9pZBIVQhM2NTk1MzU1MzE3OTk5MjY2MDQ2&filename=&opi=96797242",
			Filename: "home-v2.html",
		},
		{
			Label:    "PNG",
			URL:      "https://lh3.googleusercontent.com/aida/AOfcidX8RmTRY_iehdeWpVazDeNRZatFngpkBXawSHS94v9xczjSs_ZPfbVoc3FQzsLT2VeDc1CkET8lkY2_B2HTC0HIfJxLKkncHB4DP9mrmD6OGA8ZySRndQQRnNOCjluRbaC_ZMdXNlaVI1UTePzoBEqVzh9nR4ZDJzD7qZDQ8JZFyS6-Nwy-Xnl7CClNrpXRt3Vo3EMrifgaj63eU9VNArAaxwR9EsrAptMfq96bSmqSr_Qulaaxlhgqc8M",
			Filename: "home-v2.png",
		},
	},
	"all": {
		{
			Label:    "home-v3 HTML",
			URL:      "https://contribution.usercontent.google.com/download?c=CgthaWRhX2NvZGVmeBJ7Eh1hcHBfY29tcGFuaW9uX2dlbmVyYXRlZF9maWxlcxpaCiVodG1sXzU4ZWYwY2JmYTY4NzQzZTA4ZDQ1Y2VmNjY5ZmYzNzdmEgsSBxCcwpuNqRUYAZIBIwoKcHJvamVjdF9pZBIVQhM2NTk1MzU1MzE3OTk5MjY2MDQ2&filename=&opi=96797242",
			Filename: "home-v3.html",
		},
		{
			Label:    "home-v3 PNG",
			URL:      "https://lh3.googleusercontent.com/aida/AOfcidV2AkJjfBsziXOqfWhmu908FH5xJhX3Mg5vtD-paBc-z7Bo-C2QkmiVEEthDStiGETHYZI0ZCnVuU3m_-R0AAY3W418uE7OF1PonRKI9C91kAgKbdBXotwDr6jzR6-M8VEvl7flsSsdMKsTBljr3oys2zAlaWSQUKnay05s4R0a8asRBDYyJmdMOMU1WV6YMTB1zMxArkoGi3pQFLT1LtQf7g2Oq8_GL99Abhmxwem9diFq6CiIMNud9so",
			Filename: "home-v3.png",
		},
		{
			Label:    "dashboard HTML",
			URL:      "https://contribution.usercontent.google.com/download?c=CgthaWRhX2NvZGVmeBJ7Eh1hcHBfY29tcGFuaW9uX2dlbmVyYXRlZF9maWxlcxpaCiVodG1sXzE5ZWYyMzBhZjM1MTQ3ZjQ5ODliNjYyZjYxYmE4MzlmEgsSBxCcwpuNqRUYAZIBIwoKcHJvamVjdF9pZBIVQhM2NTk1MzU1MzE3OTk5MjY2MDQ2&filename=&opi=96797242",
			Filename: "dashboard.html",
		},
		{
			Label:    "dashboard PNG",
			URL:      "https://lh3.googleusercontent.com/aida/AOfcidXvW39dj7UJftli1eQqAT6qN4UGrzDzYC_a_p_zCcRQ6jeDw4tasbu4MC7bFsSOi1Sjd8jHcHxc2e67l_7i85BDZZ38qyHXhGoOQTLFOMNxe6ertUrNpPAkiV7sV8qpK6WMBAdJWSVy-cpdiR5tGBUBy0mtOy0WdFI1FiEPbmyKg29mrr19C732CbcZmHSvqwQ5On6AHgJU0tI2xOMg-L-wIhsJGJX-9h5kH0BMF4y2XqKQn7CRdoGy8w",
			Filename: "dashboard.png",
		},
		{
			Label:    "explore HTML",
			URL:      "https://contribution.usercontent.google.com/download?c=CgthaWRhX2NvZGVmeBJ7Eh1hcHBfY29tcGFuaW9uX2dlbmVyYXRlZF9maWxlcxpaCiVodG1sX2RkZmFlNTkzYmY5YTQ4N2ViZGY4ZmIxNmJiZTY0ZDc1EgsSBxCcwpuNqRUYAZIBIwoKcHJvamVjdF9pZBIVQhM2NTk1MzU1MzE3OTk5MjY2MDQ2&filename=&opi=96797242",
			Filename: "explore.html",
		},
		{
			Label:    "explore PNG",
			URL:      "https://lh3.googleusercontent.com/aida/AOfcidUqxIUbJJYE9REF7E5jLqZlZh6qQIi-KrLbeQP6qgXWI8e6GMlNCcDkhhUN5zaXHpHJBk-gwhtD46wXm1B6Mpl3V5RYwtu8LyVHf9q6qGo3kMaeLK-F2c_GXT3Ww7V1004600f7DfIC-vhSOGSKeweoWYUFqY76xkRLvPFfP48M0N-va7J0xbsifs4ekSAQX2rLdap6uzvMvZEiFHUk0OEX0LXTEzCwm9Wj1oX3t4s8MIDyNx3QyAqjNfQ",
			Filename: "explore.png",
		},
		{
			Label:    "profile HTML",
			URL:      "https://contribution.usercontent.google.com/download?c=CgthaWRhX2NvZGVmeBJ7Eh1hcHBfY29tcGFuaW9uX2dlbmVyYXRlZF9maWxlcxpaCiVodG1sXzcxNDY0ZDk4MDRmYzRhYmNhODI0Nzg3NjcyMmZjN2VkEgsSBxCcwpuNqRUYAZIBIwoKcHJvamVjdF9pZBIVQhM2NTk1MzU1MzE3OTk5MjY2MDQ2&filename=&opi=96797242",
			Filename: "profile.html",
		},
		{
			Label:    "profile PNG",
			URL:      "https://lh3.googleusercontent.com/aida/AOfcidVe0K-JQg5hCnXfcw43CV4ms8w-hEA___ugP5N3NUHtI6wXiEKXS9UiI9FB5OiQRY2URaWWwxSW7_5Wx-HhaFIwdywnw2e5V7RU-4ZIsBXEPvRQ3wVc2NGiejnEYrgFWMP9gTscPpSVY81AAStcO9-51Dp53oYpxDf7LOuUN6ZBnzNmRU4yr7Q_-x8P78x6XwwDIt6AJ3Z9qCbYRxWVLiW286oOp6e3B4Z_GeG4fzC8UN5oVFJnw0CFbp4",
			Filename: "profile.png",
		},
	},
}

// LookupManifest returns a copy of the built-in manifest with the given name
func LookupManifest(name string) (*Manifest, error) {
	tasks, ok := builtinManifests[name]
	if !ok {
		return nil, goerr.New("unknown manifest",
			goerr.V("name", name),
			goerr.V("available", ManifestNames()),
		)
	}

	return &Manifest{
		Name:      name,
		OutputDir: DefaultOutputDir,
		Tasks:     append([]DownloadTask(nil), tasks...),
	}, nil
}

// ManifestNames returns the names of all built-in manifests in sorted order
func ManifestNames() []string {
	names := make([]string, 0, len(builtinManifests))
	for name := range builtinManifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
