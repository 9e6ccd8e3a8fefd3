// Package targets resolves the run's target list from a single domain value
// or a newline-delimited list file.
package targets

import (
	"bufio"
	"os"

	"enumchain/internal/platform/config"
	"enumchain/internal/platform/errors"
	"enumchain/internal/platform/logx"
	"enumchain/internal/platform/validator"
)

// Load returns the ordered target list for the run. Every entry is normalized
// the same way the -d flag is (whitespace trimmed, lowercased, trailing dot
// stripped) and blank lines dropped; duplicates and order are preserved.
func Load(cfg config.Config, logger logx.Logger) ([]string, error) {
	if cfg.Domain != "" {
		domain := validator.NormalizeDomain(cfg.Domain)
		warnSuspect(domain, logger)
		return []string{domain}, nil
	}

	f, err := os.Open(cfg.ListFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrListNotFound, "%s", cfg.ListFile)
		}
		return nil, errors.Wrapf(err, "opening target list %s", cfg.ListFile)
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := validator.NormalizeDomain(scanner.Text())
		if line == "" {
			continue
		}
		warnSuspect(line, logger)
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading target list %s", cfg.ListFile)
	}

	if len(list) == 0 {
		return nil, errors.Wrapf(errors.ErrNoTargets, "list file %s", cfg.ListFile)
	}
	return list, nil
}

// warnSuspect flags targets that don't look like public domains. They are
// still processed; the warning just saves a wasted run against a typo.
func warnSuspect(target string, logger logx.Logger) {
	if !validator.IsDomain(target) {
		logger.Warn("target does not look like a valid domain", "target", target)
		return
	}
	if !validator.HasListedSuffix(target) {
		logger.Warn("target has no registrable public suffix",
			"target", target,
			"registrable", validator.RegistrableDomain(target),
		)
	}
}
