package kubeinfo

import (
	"context"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/rest"
	k8stesting "k8s.io/client-go/testing"
)

const testToken = "test-token"

func writeServiceAccount(t *testing.T, token, namespace string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		APIServer:     "https://kubernetes.default.svc",
		TokenPath:     filepath.Join(dir, "token"),
		NamespacePath: filepath.Join(dir, "namespace"),
		CAPath:        filepath.Join(dir, "ca.crt"),
		Timeout:       5 * time.Second,
	}
	if token != "" {
		require.NoError(t, os.WriteFile(cfg.TokenPath, []byte(token+"\n"), 0o600))
	}
	if namespace != "" {
		require.NoError(t, os.WriteFile(cfg.NamespacePath, []byte(namespace), 0o600))
	}
	return cfg
}

func clusterObjects() []runtime.Object {
	replicas := int32(2)
	return []runtime.Object{
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "webapi-1", Namespace: "apps"}, Status: corev1.PodStatus{Phase: corev1.PodRunning, PodIP: "10.0.0.1"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "webapi-2", Namespace: "apps"}, Status: corev1.PodStatus{Phase: corev1.PodPending}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "other", Namespace: "elsewhere"}, Status: corev1.PodStatus{Phase: corev1.PodRunning}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "webapi-service", Namespace: "apps"}, Spec: corev1.ServiceSpec{Ports: []corev1.ServicePort{{Port: 8080}}}},
		&corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "node-1"}, Status: corev1.NodeStatus{Conditions: []corev1.NodeCondition{{Type: corev1.NodeReady, Status: corev1.ConditionTrue}}}},
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "webapi", Namespace: "apps"}, Spec: appsv1.DeploymentSpec{Replicas: &replicas}},
	}
}

func fakeFactory(cs kubernetes.Interface, seen **rest.Config) ClientFactory {
	return func(rc *rest.Config) (kubernetes.Interface, error) {
		if seen != nil {
			*seen = rc
		}
		return cs, nil
	}
}

func failList(cs *fake.Clientset, resource string) {
	cs.PrependReactor("list", resource, func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New(resource + " is forbidden")
	})
}

func TestInspect_AllListsSucceed(t *testing.T) {
	cfg := writeServiceAccount(t, testToken, "apps")
	var seen *rest.Config
	in := NewInspector(cfg, WithClientFactory(fakeFactory(fake.NewSimpleClientset(clusterObjects()...), &seen)))

	info := in.Inspect(context.Background())

	assert.Empty(t, info.Error)
	assert.True(t, info.Complete)
	assert.Equal(t, 2, info.TotalPods)
	assert.Equal(t, 1, info.RunningPods)
	assert.Equal(t, 1, info.PendingPods)
	assert.Equal(t, 1, info.TotalServices)
	assert.Equal(t, int32(8080), info.Services[0].Port)
	assert.Equal(t, 1, info.TotalNodes)
	assert.Equal(t, 1, info.TotalDeployments)
	assert.Equal(t, int32(2), info.Deployments[0].Replicas)

	require.NotNil(t, seen)
	assert.Equal(t, testToken, seen.BearerToken)
	assert.Equal(t, cfg.CAPath, seen.TLSClientConfig.CAFile)
	assert.False(t, seen.TLSClientConfig.Insecure)
}

func TestInspect_InsecureLeavesCAUnset(t *testing.T) {
	cfg := writeServiceAccount(t, testToken, "apps")
	cfg.InsecureSkipVerify = true
	var seen *rest.Config
	NewInspector(cfg, WithClientFactory(fakeFactory(fake.NewSimpleClientset(), &seen))).Inspect(context.Background())

	require.NotNil(t, seen)
	assert.True(t, seen.TLSClientConfig.Insecure)
	assert.Empty(t, seen.TLSClientConfig.CAFile)
}

func TestInspect_MissingCredentials(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		namespace string
		wantErr   string
	}{
		{"token missing", "", "apps", "token"},
		{"namespace missing", testToken, "", "namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeServiceAccount(t, tt.token, tt.namespace)
			in := NewInspector(cfg, WithClientFactory(func(*rest.Config) (kubernetes.Interface, error) {
				t.Fatal("client must not be built without credentials")
				return nil, nil
			}))

			info := in.Inspect(context.Background())

			assert.Contains(t, info.Error, tt.wantErr)
			assert.False(t, info.Complete)
			assert.Zero(t, info.TotalPods)
			assert.Zero(t, info.TotalServices)
			assert.Zero(t, info.TotalNodes)
			assert.Zero(t, info.TotalDeployments)
			assert.NotContains(t, info.Error, testToken)
		})
	}
}

func TestInspect_ServiceFailureKeepsEarlierResults(t *testing.T) {
	cfg := writeServiceAccount(t, testToken, "apps")
	cs := fake.NewSimpleClientset(clusterObjects()...)
	failList(cs, "services")

	info := NewInspector(cfg, WithClientFactory(fakeFactory(cs, nil))).Inspect(context.Background())

	assert.Contains(t, info.Error, "services is forbidden")
	assert.False(t, info.Complete)
	assert.Equal(t, 2, info.TotalPods)
	assert.Zero(t, info.TotalServices)
	assert.Zero(t, info.TotalNodes)
	assert.Zero(t, info.TotalDeployments)
	assert.Empty(t, info.Deployments)
}

func TestInspect_NodeFailureIsRecovered(t *testing.T) {
	cfg := writeServiceAccount(t, testToken, "apps")
	cs := fake.NewSimpleClientset(clusterObjects()...)
	failList(cs, "nodes")

	info := NewInspector(cfg, WithClientFactory(fakeFactory(cs, nil))).Inspect(context.Background())

	assert.Empty(t, info.Error)
	assert.False(t, info.Complete)
	assert.Zero(t, info.TotalNodes)
	assert.Empty(t, info.Nodes)
	assert.Equal(t, 1, info.TotalDeployments)
}

func TestInspect_DeploymentFailure(t *testing.T) {
	cfg := writeServiceAccount(t, testToken, "apps")
	cs := fake.NewSimpleClientset(clusterObjects()...)
	failList(cs, "deployments")

	info := NewInspector(cfg, WithClientFactory(fakeFactory(cs, nil))).Inspect(context.Background())

	assert.Contains(t, info.Error, "deployments")
	assert.False(t, info.Complete)
	assert.Equal(t, 2, info.TotalPods)
	assert.Equal(t, 1, info.TotalServices)
	assert.Equal(t, 1, info.TotalNodes)
	assert.Zero(t, info.TotalDeployments)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestInspect_RESTAgainstTLSServer(t *testing.T) {
	var (
		mu          sync.Mutex
		authHeaders []string
	)
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		mu.Unlock()
		switch r.URL.Path {
		case "/api/v1/namespaces/apps/pods":
			writeJSON(w, corev1.PodList{
				TypeMeta: metav1.TypeMeta{Kind: "PodList", APIVersion: "v1"},
				Items:    []corev1.Pod{{ObjectMeta: metav1.ObjectMeta{Name: "webapi-1"}, Status: corev1.PodStatus{Phase: corev1.PodRunning}}},
			})
		case "/api/v1/namespaces/apps/services":
			writeJSON(w, corev1.ServiceList{TypeMeta: metav1.TypeMeta{Kind: "ServiceList", APIVersion: "v1"}})
		case "/api/v1/nodes":
			http.Error(w, `{"kind":"Status","apiVersion":"v1","status":"Failure","reason":"Forbidden","code":403}`, http.StatusForbidden)
		case "/apis/apps/v1/namespaces/apps/deployments":
			writeJSON(w, appsv1.DeploymentList{TypeMeta: metav1.TypeMeta{Kind: "DeploymentList", APIVersion: "apps/v1"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := writeServiceAccount(t, testToken, "apps")
	cfg.APIServer = srv.URL
	caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	require.NoError(t, os.WriteFile(cfg.CAPath, caPEM, 0o600))

	info := NewInspector(cfg).Inspect(context.Background())

	assert.Empty(t, info.Error)
	assert.False(t, info.Complete)
	assert.Equal(t, 1, info.TotalPods)
	assert.Equal(t, 1, info.RunningPods)
	assert.Zero(t, info.TotalNodes)
	require.NotEmpty(t, authHeaders)
	for _, h := range authHeaders {
		assert.Equal(t, "Bearer "+testToken, h)
	}
}

func TestInspect_UnreadableCABundle(t *testing.T) {
	cfg := writeServiceAccount(t, testToken, "apps")
	cfg.CAPath = filepath.Join(t.TempDir(), "missing-ca.crt")

	info := NewInspector(cfg).Inspect(context.Background())

	assert.NotEmpty(t, info.Error)
	assert.False(t, info.Complete)
	assert.Zero(t, info.TotalPods)
}
