// Package kubeinfo lists the workloads around the running pod using the
// service account mounted into it.
package kubeinfo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// Config locates the control plane and the mounted service account files.
type Config struct {
	APIServer     string
	TokenPath     string
	NamespacePath string
	CAPath        string
	// InsecureSkipVerify disables certificate validation; CAPath is ignored.
	InsecureSkipVerify bool
	// Timeout bounds one whole inspection.
	Timeout time.Duration
}

// ClientFactory builds a clientset for the given REST config.
type ClientFactory func(cfg *rest.Config) (kubernetes.Interface, error)

// Inspector gathers a ClusterInfo snapshot. Credentials are re-read on every call.
type Inspector struct {
	cfg       Config
	newClient ClientFactory
	readFile  func(string) ([]byte, error)
}

// Option customizes an Inspector.
type Option func(*Inspector)

// WithClientFactory replaces the clientset constructor.
func WithClientFactory(f ClientFactory) Option {
	return func(i *Inspector) { i.newClient = f }
}

// NewInspector returns an Inspector that talks to cfg.APIServer.
func NewInspector(cfg Config, opts ...Option) *Inspector {
	i := &Inspector{
		cfg: cfg,
		newClient: func(rc *rest.Config) (kubernetes.Interface, error) {
			return kubernetes.NewForConfig(rc)
		},
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inspect never returns an error: failures are recorded in ClusterInfo.Error
// and results gathered before the failing list are kept. A failed node list is
// recovered as zero nodes. Complete is set only when all four lists succeeded.
func (i *Inspector) Inspect(ctx context.Context) *models.ClusterInfo {
	info := models.NewClusterInfo()
	log := logger.Ctx(ctx)

	token, err := i.readCredential(i.cfg.TokenPath)
	if err != nil {
		info.Error = fmt.Sprintf("reading service account token: %v", err)
		return info
	}
	namespace, err := i.readCredential(i.cfg.NamespacePath)
	if err != nil {
		info.Error = fmt.Sprintf("reading service account namespace: %v", err)
		return info
	}

	client, err := i.newClient(i.restConfig(token))
	if err != nil {
		info.Error = fmt.Sprintf("creating kubernetes client: %v", err)
		return info
	}

	if i.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.cfg.Timeout)
		defer cancel()
	}

	var (
		pods        *corev1.PodList
		services    *corev1.ServiceList
		nodes       *corev1.NodeList
		deployments *appsv1.DeploymentList

		podsErr, servicesErr, nodesErr, deploymentsErr error
	)

	// Each list records its own error so one failure does not cancel the others.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		pods, podsErr = client.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	}()
	go func() {
		defer wg.Done()
		services, servicesErr = client.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	}()
	go func() {
		defer wg.Done()
		nodes, nodesErr = client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	}()
	go func() {
		defer wg.Done()
		deployments, deploymentsErr = client.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	}()
	wg.Wait()

	if podsErr != nil {
		info.Error = fmt.Sprintf("listing pods in %s: %v", namespace, podsErr)
		return info
	}
	ApplyPods(info, pods.Items)

	if servicesErr != nil {
		info.Error = fmt.Sprintf("listing services in %s: %v", namespace, servicesErr)
		return info
	}
	ApplyServices(info, services.Items)

	if nodesErr != nil {
		log.Warn().Err(nodesErr).Msg("Listing nodes failed, reporting zero nodes")
	} else {
		ApplyNodes(info, nodes.Items)
	}

	if deploymentsErr != nil {
		info.Error = fmt.Sprintf("listing deployments in %s: %v", namespace, deploymentsErr)
		return info
	}
	ApplyDeployments(info, deployments.Items)

	info.Complete = nodesErr == nil
	return info
}

func (i *Inspector) readCredential(path string) (string, error) {
	data, err := i.readFile(path)
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return value, nil
}

func (i *Inspector) restConfig(token string) *rest.Config {
	rc := &rest.Config{
		Host:        i.cfg.APIServer,
		BearerToken: token,
		Timeout:     i.cfg.Timeout,
	}
	if i.cfg.InsecureSkipVerify {
		rc.TLSClientConfig = rest.TLSClientConfig{Insecure: true}
	} else {
		rc.TLSClientConfig = rest.TLSClientConfig{CAFile: i.cfg.CAPath}
	}
	return rc
}
