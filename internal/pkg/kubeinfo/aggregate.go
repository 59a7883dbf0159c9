package kubeinfo

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/yigit/studentrecords/internal/app/models"
)

const (
	unknownPhase       = "Unknown"
	unknownValue       = "Unknown"
	defaultServiceType = string(corev1.ServiceTypeClusterIP)
)

// ApplyPods replaces the pod list and recounts the phase buckets. Phases other
// than Running, Pending and Failed only contribute to the total.
func ApplyPods(info *models.ClusterInfo, pods []corev1.Pod) {
	info.Pods = make([]models.PodInfo, 0, len(pods))
	info.RunningPods, info.PendingPods, info.FailedPods = 0, 0, 0

	for i := range pods {
		summary := SummarizePod(&pods[i])
		switch corev1.PodPhase(summary.Status) {
		case corev1.PodRunning:
			info.RunningPods++
		case corev1.PodPending:
			info.PendingPods++
		case corev1.PodFailed:
			info.FailedPods++
		}
		info.Pods = append(info.Pods, summary)
	}
	info.TotalPods = len(info.Pods)
}

// ApplyServices replaces the service list and its total.
func ApplyServices(info *models.ClusterInfo, services []corev1.Service) {
	info.Services = make([]models.ServiceInfo, 0, len(services))
	for i := range services {
		info.Services = append(info.Services, SummarizeService(&services[i]))
	}
	info.TotalServices = len(info.Services)
}

// ApplyNodes replaces the node list and its total.
func ApplyNodes(info *models.ClusterInfo, nodes []corev1.Node) {
	info.Nodes = make([]models.NodeInfo, 0, len(nodes))
	for i := range nodes {
		info.Nodes = append(info.Nodes, SummarizeNode(&nodes[i]))
	}
	info.TotalNodes = len(info.Nodes)
}

// ApplyDeployments replaces the deployment list and its total.
func ApplyDeployments(info *models.ClusterInfo, deployments []appsv1.Deployment) {
	info.Deployments = make([]models.DeploymentInfo, 0, len(deployments))
	for i := range deployments {
		info.Deployments = append(info.Deployments, SummarizeDeployment(&deployments[i]))
	}
	info.TotalDeployments = len(info.Deployments)
}

// SummarizePod reports an empty phase as Unknown.
func SummarizePod(pod *corev1.Pod) models.PodInfo {
	phase := string(pod.Status.Phase)
	if phase == "" {
		phase = unknownPhase
	}
	return models.PodInfo{
		Name:     pod.Name,
		Status:   phase,
		PodIP:    optional(pod.Status.PodIP),
		NodeName: optional(pod.Spec.NodeName),
	}
}

// SummarizeService reports the first declared port, or 0 for a port-less service.
func SummarizeService(svc *corev1.Service) models.ServiceInfo {
	typ := string(svc.Spec.Type)
	if typ == "" {
		typ = defaultServiceType
	}

	var port int32
	if len(svc.Spec.Ports) > 0 {
		port = svc.Spec.Ports[0].Port
	}

	return models.ServiceInfo{
		Name:      svc.Name,
		Type:      typ,
		ClusterIP: optional(svc.Spec.ClusterIP),
		Port:      port,
	}
}

// SummarizeNode marks a node Ready only when its Ready condition is True.
func SummarizeNode(node *corev1.Node) models.NodeInfo {
	status := models.NodeNotReady
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			if cond.Status == corev1.ConditionTrue {
				status = models.NodeReady
			}
			break
		}
	}

	return models.NodeInfo{
		Name:              node.Name,
		Status:            status,
		KubernetesVersion: orUnknown(node.Status.NodeInfo.KubeletVersion),
		OSImage:           orUnknown(node.Status.NodeInfo.OSImage),
	}
}

// SummarizeDeployment treats unset desired replicas as 0.
func SummarizeDeployment(d *appsv1.Deployment) models.DeploymentInfo {
	var replicas int32
	if d.Spec.Replicas != nil {
		replicas = *d.Spec.Replicas
	}
	return models.DeploymentInfo{
		Name:          d.Name,
		Replicas:      replicas,
		ReadyReplicas: d.Status.ReadyReplicas,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}
