package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv rewrites every snapshot file when set
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_")

// ValidateSnapshot compares obj, encoded as indented JSON, with testdata/<test>-<call>.json
// A missing snapshot file is written instead of failing
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	name := nameReplacer.Replace(t.Name())

	mu.Lock()
	call := callCount[name]
	callCount[name] = call + 1
	mu.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) != "" {
		write(t, filename, objJSON)
		return
	} else if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}
