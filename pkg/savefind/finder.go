// Package savefind heuristically locates the directories a game keeps its
// save data in. The search works in confidence tiers: the embedded
// compatibility prefix of the game (when one exists), the installation
// directory, and finally the well-known OS save roots. Results are
// deterministic, unique and free of ancestor/descendant pairs.
package savefind

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/savesync/savesync/internal/platform"
	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/models"
)

// Search tiers, highest confidence first.
const (
	tierCompatPrefix = 1
	tierInstallDir   = 2
	tierCommonRoots  = 3
)

// DefaultMaxDepth bounds directory recursion to avoid runaway scans.
const DefaultMaxDepth = 3

// installSaveDirs are the literal subdirectory names probed next to a
// game's executable.
var installSaveDirs = []string{"save", "saves", "savegame", "savegames", "SaveData", "Saves"}

// saveFilePatterns match filenames by save-like extension.
var saveFilePatterns = []string{"*.sav", "*.dat", "*.save", "*.bin", "*.slot"}

// saveFileKeywords match filenames by save-like substring.
var saveFileKeywords = []string{"save", "saves", "savegame", "savedata", "saved"}

// systemDirs are never traversed; they are huge and never hold game saves.
var systemDirs = map[string]bool{
	"Microsoft": true,
	"Temp":      true,
	"temp":      true,
	"Cache":     true,
	"cache":     true,
}

var nameCleaner = regexp.MustCompile(`[^\w\s-]`)

// Finder performs the heuristic save directory search.
type Finder struct {
	osType      platform.OSType
	steamPath   string
	logger      logging.Logger
	maxDepth    int
	customRoots []string
}

// NewFinder creates a finder. steamPath may be empty when no launcher
// install was detected; the compat-prefix tier is then skipped. A nil
// logger discards output.
func NewFinder(osType platform.OSType, steamPath string, logger logging.Logger) *Finder {
	if logger == nil {
		logger = logging.NewNull()
	}
	return &Finder{
		osType:    osType,
		steamPath: steamPath,
		logger:    logger,
		maxDepth:  DefaultMaxDepth,
	}
}

// AddCustomRoots registers extra roots searched alongside the common OS
// save roots. Paths that do not exist are ignored.
func (f *Finder) AddCustomRoots(paths []string) {
	for _, p := range paths {
		p = platform.ExpandPath(p)
		if fsutil.DirExists(p) {
			f.customRoots = append(f.customRoots, p)
		}
	}
}

// FindSaveDirs returns the directories likely holding save data for game,
// ordered from highest to lowest confidence. The list contains no
// duplicates and no entry that is an ancestor or descendant of another.
func (f *Finder) FindSaveDirs(game models.ShortcutRecord) []models.SaveCandidate {
	cleanName := CleanGameName(game.Name)
	variations := nameVariations(cleanName)
	words := significantWords(cleanName)

	var candidates []models.SaveCandidate

	// Tier 1: embedded compatibility prefix. Always attempted when
	// applicable, regardless of later tiers.
	if f.osType == platform.Linux {
		if prefix := f.compatPrefix(game); prefix != "" {
			for _, sub := range platform.ProfileSaveSubdirs() {
				loc := filepath.Join(prefix, "users", "steamuser", sub)
				if !fsutil.DirExists(loc) {
					continue
				}
				for _, m := range f.findGameSubdirs(loc, variations, words) {
					m.Tier = tierCompatPrefix
					candidates = append(candidates, m)
				}
			}
		}
	}

	// Tier 2: save directories next to the executable.
	if startDir := game.StartDir; startDir != "" {
		dir := platform.ExpandPath(trimQuotes(startDir))
		if fsutil.DirExists(dir) {
			for _, name := range installSaveDirs {
				potential := filepath.Join(dir, name)
				if fsutil.DirExists(potential) {
					candidates = append(candidates, models.SaveCandidate{
						Path:      potential,
						Tier:      tierInstallDir,
						FileCount: f.countSaveFiles(potential),
					})
				}
			}
		}
	}

	// Tier 3: common OS save roots, consulted when nothing was found yet.
	if len(candidates) == 0 {
		roots := append(platform.SaveRoots(f.osType), f.customRoots...)
		for _, root := range roots {
			for _, m := range f.findGameSubdirs(root, variations, words) {
				m.Tier = tierCommonRoots
				candidates = append(candidates, m)
			}
		}
	}

	result := dedupe(candidates)

	f.logger.Debug("save search finished", logging.Fields{
		"game": game.Name, "candidates": len(result),
	})
	return result
}

// compatPrefix returns the drive_c root of the game's compatibility prefix,
// from the per-appid compatdata directory or from a drive_c component in
// the configured start directory.
func (f *Finder) compatPrefix(game models.ShortcutRecord) string {
	if f.steamPath != "" && game.AppID != 0 {
		compat := filepath.Join(f.steamPath, "steamapps", "compatdata", strconv.FormatUint(uint64(game.AppID), 10))
		if fsutil.DirExists(compat) {
			prefix := filepath.Join(compat, "pfx", "drive_c")
			if fsutil.DirExists(prefix) {
				return prefix
			}
		}
	}

	// Some shortcuts launch straight out of a prefix; the start directory
	// then carries the drive_c path.
	startDir := trimQuotes(game.StartDir)
	if idx := strings.Index(startDir, "drive_c"); idx >= 0 {
		prefix := startDir[:idx+len("drive_c")]
		if fsutil.DirExists(prefix) {
			return prefix
		}
	}

	return ""
}

// findGameSubdirs walks base up to the depth bound looking for directories
// whose name matches the game, then probes each match for actual save
// content. Matches with save files are reported at the containing
// directory; matches without keep the directory itself.
func (f *Finder) findGameSubdirs(base string, variations []string, words []string) []models.SaveCandidate {
	var matches []models.SaveCandidate

	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		if depth > f.maxDepth {
			return
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		for _, entry := range entries {
			if !entry.IsDir() || systemDirs[entry.Name()] {
				continue
			}

			child := filepath.Join(dir, entry.Name())
			if matchesGameName(entry.Name(), variations, words) {
				if saveDirs := f.findSaveSubdirs(child); len(saveDirs) > 0 {
					matches = append(matches, saveDirs...)
				} else {
					matches = append(matches, models.SaveCandidate{Path: child})
				}
			} else {
				walk(child, depth+1)
			}
		}
	}

	walk(base, 0)
	return matches
}

// findSaveSubdirs locates the directories under root that actually contain
// save-like files, preferring directories with more files and dropping any
// ancestor of a retained result.
func (f *Finder) findSaveSubdirs(root string) []models.SaveCandidate {
	counts := make(map[string]int)

	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		if depth > f.maxDepth {
			return
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		count := 0
		for _, entry := range entries {
			if entry.IsDir() {
				if !systemDirs[entry.Name()] {
					walk(filepath.Join(dir, entry.Name()), depth+1)
				}
				continue
			}
			if isSaveFile(entry.Name()) {
				count++
			}
		}
		if count > 0 {
			counts[dir] = count
		}
	}

	walk(root, 0)
	if len(counts) == 0 {
		return nil
	}

	// Highest file count first; ties broken by path for determinism.
	ordered := make([]models.SaveCandidate, 0, len(counts))
	for path, count := range counts {
		ordered = append(ordered, models.SaveCandidate{Path: path, FileCount: count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].FileCount != ordered[j].FileCount {
			return ordered[i].FileCount > ordered[j].FileCount
		}
		return ordered[i].Path < ordered[j].Path
	})

	// The highest-count directory in each hierarchy wins; ancestors and
	// descendants of a retained candidate are dropped.
	var result []models.SaveCandidate
	for _, cand := range ordered {
		if relatedToAny(cand.Path, result) {
			continue
		}
		result = append(result, cand)
	}
	return result
}

// countSaveFiles counts save-like files under dir within the depth bound.
func (f *Finder) countSaveFiles(dir string) int {
	total := 0
	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		if depth > f.maxDepth {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				if !systemDirs[entry.Name()] {
					walk(filepath.Join(dir, entry.Name()), depth+1)
				}
				continue
			}
			if isSaveFile(entry.Name()) {
				total++
			}
		}
	}
	walk(dir, 0)
	return total
}

// isSaveFile reports whether a filename looks like save data, by extension
// or by substring.
func isSaveFile(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range saveFilePatterns {
		if ok, _ := doublestar.Match(pattern, lower); ok {
			return true
		}
	}
	for _, kw := range saveFileKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchesGameName reports whether a directory name plausibly belongs to the
// game: any cleaned-name variation as substring in either direction, or a
// significant word of the game name inside the directory name.
func matchesGameName(dirName string, variations []string, words []string) bool {
	lower := strings.ToLower(dirName)

	for _, v := range variations {
		if v == "" {
			continue
		}
		if strings.Contains(lower, v) || strings.Contains(v, lower) {
			return true
		}
	}
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// CleanGameName strips punctuation from a game name, keeping word
// characters, whitespace and dashes, and collapses runs of whitespace.
func CleanGameName(name string) string {
	clean := nameCleaner.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(clean), " ")
}

// nameVariations returns the spellings a game directory might use.
func nameVariations(cleanName string) []string {
	lower := strings.ToLower(cleanName)
	return []string{
		lower,
		strings.ReplaceAll(lower, " ", ""),
		strings.ReplaceAll(lower, " ", "-"),
	}
}

// significantWords returns the words of the cleaned name longer than three
// characters.
func significantWords(cleanName string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(cleanName)) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}

// dedupe removes duplicate paths and ancestor/descendant pairs, then sorts
// by tier, file count descending and path.
func dedupe(candidates []models.SaveCandidate) []models.SaveCandidate {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Tier != candidates[j].Tier {
			return candidates[i].Tier < candidates[j].Tier
		}
		if candidates[i].FileCount != candidates[j].FileCount {
			return candidates[i].FileCount > candidates[j].FileCount
		}
		return candidates[i].Path < candidates[j].Path
	})

	seen := make(map[string]bool)
	var result []models.SaveCandidate
	for _, cand := range candidates {
		if seen[cand.Path] || relatedToAny(cand.Path, result) {
			continue
		}
		result = append(result, cand)
		seen[cand.Path] = true
	}
	return result
}

// isAncestor reports whether parent is a strict ancestor of child.
func isAncestor(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// relatedToAny reports whether path is an ancestor or descendant of any
// retained candidate.
func relatedToAny(path string, retained []models.SaveCandidate) bool {
	for _, r := range retained {
		if isAncestor(r.Path, path) || isAncestor(path, r.Path) {
			return true
		}
	}
	return false
}

// trimQuotes removes the surrounding quotes launchers store around paths.
func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}
