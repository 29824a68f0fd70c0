package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Registry is a file-backed store for job array records, one YAML file
// per job under {spool}/jobs.
type Registry struct {
	dir string

	// TmpDir, when set, fills in loaded records whose tmp_path is
	// empty. Submitters that rely on the cluster-wide temp root omit
	// the field from their records.
	TmpDir string
}

func NewRegistry(spool string) *Registry {
	return &Registry{dir: filepath.Join(spool, "jobs")}
}

// Save writes a job record, assigning a record id when the handle does
// not carry one yet.
func (r *Registry) Save(job *ArrayJob) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid job record: %w", err)
	}
	if job.RecordID == "" {
		job.RecordID = uuid.New().String()
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating registry dir: %w", err)
	}
	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("encoding job record: %w", err)
	}
	return os.WriteFile(r.recordPath(job.Name), data, 0o644)
}

// Get resolves a job reference, matching the record filename (job name)
// first and falling back to a scan by job id.
func (r *Registry) Get(ref string) (*ArrayJob, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty job reference")
	}
	job, err := r.load(r.recordPath(ref))
	if err == nil {
		return job, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	jobs, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if j.JobID == ref {
			return j, nil
		}
	}
	return nil, fmt.Errorf("job not found: %s", ref)
}

// List returns all registered jobs sorted by name. Records that fail to
// parse are skipped; a half-written file from a concurrent submitter
// should not break listing.
func (r *Registry) List() ([]*ArrayJob, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading registry dir: %w", err)
	}
	var jobs []*ArrayJob
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		job, err := r.load(filepath.Join(r.dir, e.Name()))
		if err != nil {
			continue
		}
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].Name < jobs[k].Name })
	return jobs, nil
}

// Delete removes a job record by name.
func (r *Registry) Delete(name string) error {
	if err := os.Remove(r.recordPath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("job not found: %s", name)
		}
		return err
	}
	return nil
}

func (r *Registry) recordPath(name string) string {
	return filepath.Join(r.dir, name+".yaml")
}

func (r *Registry) load(path string) (*ArrayJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job ArrayJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if job.TmpPath == "" && r.TmpDir != "" {
		job.TmpPath = r.TmpDir
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record %s: %w", path, err)
	}
	return &job, nil
}
