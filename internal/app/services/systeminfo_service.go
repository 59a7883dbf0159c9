package services

import (
	"context"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/pkg/metrics"
	"github.com/yigit/studentrecords/internal/pkg/netutil"
)

// Fallbacks reported when the orchestrator did not inject a value.
const (
	NotInKubernetes    = "Not in Kubernetes"
	DefaultServiceName = "webapi-service"
	DefaultServiceHost = "localhost"
	UnknownValue       = "Unknown"
)

// DatabaseProbe is the database side of the diagnostics endpoint.
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
	Counts(ctx context.Context) (repositories.EntityCounts, error)
}

// ClusterInspector never fails; problems are reported inside the returned snapshot.
type ClusterInspector interface {
	Inspect(ctx context.Context) *models.ClusterInfo
}

// SystemInfoConfig carries the configured values echoed by the endpoint.
type SystemInfoConfig struct {
	AppVersion      string
	Environment     string
	ServerPort      string
	DatabaseServer  string
	DatabaseName    string
	DatabaseUser    string
	DatabaseTimeout time.Duration
}

// SystemInfoService assembles the diagnostics snapshot.
type SystemInfoService struct {
	cfg      SystemInfoConfig
	probe    DatabaseProbe
	cluster  ClusterInspector
	localIP  func() string
	hostname func() (string, error)
	now      func() time.Time
}

// NewSystemInfoService wires the collaborators. cluster may be nil when no
// inspector is configured; introspection is then skipped.
func NewSystemInfoService(cfg SystemInfoConfig, probe DatabaseProbe, cluster ClusterInspector) *SystemInfoService {
	return &SystemInfoService{
		cfg:      cfg,
		probe:    probe,
		cluster:  cluster,
		localIP:  netutil.LocalIPv4,
		hostname: os.Hostname,
		now:      time.Now,
	}
}

// GetSystemInfo always returns a snapshot. Cluster introspection runs only when
// POD_NAME is set and concurrently with the database probe.
func (s *SystemInfoService) GetSystemInfo(ctx context.Context) *models.SystemInfo {
	info := s.environmentInfo()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.probeDatabase(ctx, info)
	}()

	var cluster *models.ClusterInfo
	if config.GetEnv("POD_NAME", "") != "" && s.cluster != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cluster = s.inspectCluster(ctx)
		}()
	}
	wg.Wait()

	info.ClusterInfo = cluster
	return info
}

func (s *SystemInfoService) environmentInfo() *models.SystemInfo {
	host, err := s.hostname()
	if err != nil || host == "" {
		host = UnknownValue
	}

	podIP := config.GetEnv("POD_IP", "")
	if podIP == "" {
		podIP = s.localIP()
	}

	now := s.now()
	zone, _ := now.Zone()

	return &models.SystemInfo{
		PodName:              config.GetEnv("POD_NAME", NotInKubernetes),
		PodNamespace:         config.GetEnv("POD_NAMESPACE", NotInKubernetes),
		PodIP:                podIP,
		NodeName:             config.GetEnv("NODE_NAME", NotInKubernetes),
		ServiceName:          config.GetEnv("SERVICE_NAME", DefaultServiceName),
		ServiceHost:          config.GetEnv("WEBAPI_SERVICE_SERVICE_HOST", DefaultServiceHost),
		ServicePort:          config.GetEnv("WEBAPI_SERVICE_SERVICE_PORT", s.cfg.ServerPort),
		HostName:             host,
		Environment:          orUnknown(s.cfg.Environment),
		AppVersion:           s.cfg.AppVersion,
		Framework:            runtime.Version(),
		DatabaseServer:       orUnknown(s.cfg.DatabaseServer),
		DatabaseName:         orUnknown(s.cfg.DatabaseName),
		DatabaseUser:         orUnknown(s.cfg.DatabaseUser),
		ContainerName:        config.GetEnv("HOSTNAME", host),
		IsRunningInContainer: runningInContainer(),
		ServerTime:           now.UTC(),
		ServerTimeZone:       zone,
	}
}

// probeDatabase fills the database fields. A failed ping reports Disconnected;
// a failure after connecting reports "Error: <cause>".
func (s *SystemInfoService) probeDatabase(ctx context.Context, info *models.SystemInfo) {
	log := logger.Ctx(ctx)
	if s.probe == nil {
		info.DatabaseStatus = models.DatabaseStatusDisconnected
		return
	}

	if s.cfg.DatabaseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.DatabaseTimeout)
		defer cancel()
	}

	if err := s.probe.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Database unreachable during diagnostics")
		info.DatabaseStatus = models.DatabaseStatusDisconnected
		return
	}
	info.DatabaseStatus = models.DatabaseStatusConnected

	version, err := s.probe.ServerVersion(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Reading database version failed")
		info.DatabaseStatus = models.DatabaseStatusErrorPrefix + err.Error()
		return
	}
	info.DatabaseVersion = &version

	counts, err := s.probe.Counts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Counting rows failed")
		info.DatabaseStatus = models.DatabaseStatusErrorPrefix + err.Error()
		return
	}
	info.StudentCount = counts.Students
	info.CourseCount = counts.Courses
	info.EnrollmentCount = counts.Enrollments
	info.DepartmentCount = counts.Departments
}

func (s *SystemInfoService) inspectCluster(ctx context.Context) *models.ClusterInfo {
	cluster := s.cluster.Inspect(ctx)

	switch {
	case cluster.Complete:
		metrics.ObserveClusterInspection(metrics.InspectionComplete)
	case cluster.Error != "":
		logger.Ctx(ctx).Warn().Str("cause", cluster.Error).Msg("Cluster inspection failed")
		metrics.ObserveClusterInspection(metrics.InspectionFailed)
	default:
		metrics.ObserveClusterInspection(metrics.InspectionPartial)
	}
	return cluster
}

func runningInContainer() bool {
	return config.GetEnvAsBool("DOTNET_RUNNING_IN_CONTAINER", false) || config.GetEnvAsBool("RUNNING_IN_CONTAINER", false)
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownValue
	}
	return v
}
